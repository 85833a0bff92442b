package admin

import (
	"html/template"
	"time"

	"metagrow/internal/domain"
)

type contactView struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Service   string
	Message   string
	Submitted string
}

type dashboardData struct {
	Total       int
	Today       int
	WithService int
	Contacts    []contactView
}

// buildDashboardData computes the report: total count, count created on the
// current calendar day (local date), count with a service interest, and the
// records newest first.
func buildDashboardData(contacts []domain.Contact, now time.Time) dashboardData {
	data := dashboardData{Total: len(contacts)}

	y, m, d := now.Date()
	for _, c := range contacts {
		cy, cm, cd := c.CreatedAt.Date()
		if cy == y && cm == m && cd == d {
			data.Today++
		}
		if c.Service != "" {
			data.WithService++
		}
	}

	for i := len(contacts) - 1; i >= 0; i-- {
		c := contacts[i]
		service := c.Service
		if service == "" {
			service = "Not specified"
		}
		data.Contacts = append(data.Contacts, contactView{
			ID:        c.ID,
			Name:      c.FullName(),
			Email:     c.Email,
			Phone:     c.Phone,
			Service:   service,
			Message:   c.Message,
			Submitted: c.CreatedAt.Format("02 Jan 2006 15:04"),
		})
	}

	return data
}

var loginTmpl = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Admin Login - MetaGrow</title>
<style>
body { font-family: 'Segoe UI', Tahoma, sans-serif; margin: 0; background: linear-gradient(135deg, #FF6B6B 0%, #FF8C42 100%); min-height: 100vh; display: flex; align-items: center; justify-content: center; }
.login-container { background: white; padding: 40px; border-radius: 20px; max-width: 400px; width: 100%; text-align: center; }
h1 { color: #2c3e50; font-weight: 300; }
.form-group { margin-bottom: 20px; text-align: left; }
label { display: block; margin-bottom: 5px; color: #2c3e50; }
input { width: 100%; padding: 12px; border: 2px solid #e9ecef; border-radius: 8px; box-sizing: border-box; }
button { width: 100%; padding: 12px; background: linear-gradient(135deg, #FF6B6B 0%, #FF8C42 100%); color: white; border: none; border-radius: 8px; font-size: 16px; cursor: pointer; }
.error { color: #e74c3c; margin-top: 10px; display: none; }
</style>
</head>
<body>
<div class="login-container">
<h1>Admin Dashboard Login</h1>
<form id="loginForm" method="POST" action="/admin/login">
<div class="form-group"><label for="username">Username</label><input type="text" id="username" name="username" required></div>
<div class="form-group"><label for="password">Password</label><input type="password" id="password" name="password" required></div>
<button type="submit">Login</button>
<div id="error" class="error">Invalid credentials. Please try again.</div>
</form>
<script>
document.getElementById('loginForm').onsubmit = async function(e) {
  e.preventDefault();
  const resp = await fetch('/admin/login', { method: 'POST', body: new FormData(this) });
  if (resp.ok || resp.redirected) { window.location.reload(); }
  else { document.getElementById('error').style.display = 'block'; }
};
</script>
</div>
</body>
</html>`))

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Contact Form Submissions - Admin Dashboard</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; background: #f5f5f5; }
.container { max-width: 1200px; margin: 0 auto; background: white; padding: 20px; border-radius: 8px; }
.header { background: linear-gradient(135deg, #FF6B6B 0%, #FF8C42 100%); color: white; padding: 20px; border-radius: 8px; margin-bottom: 20px; display: flex; justify-content: space-between; align-items: center; }
.header h1 { margin: 0; }
.logout-btn { background: rgba(255,255,255,0.2); color: white; padding: 8px 16px; border: none; border-radius: 5px; cursor: pointer; }
.stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 15px; margin-bottom: 20px; }
.stat-card { background: #FFF5F0; padding: 15px; border-radius: 8px; text-align: center; }
.stat-number { font-size: 24px; font-weight: bold; color: #FF6B6B; }
.contact-card { border: 1px solid #ddd; margin: 10px 0; padding: 15px; border-radius: 8px; background: #f9f9f9; }
.contact-header { display: flex; justify-content: space-between; margin-bottom: 10px; }
.contact-name { font-weight: bold; font-size: 18px; color: #FF6B6B; }
.contact-date { color: #666; font-size: 14px; }
.contact-details { display: grid; grid-template-columns: 1fr 1fr; gap: 10px; margin: 10px 0; }
.message-box { background: white; padding: 15px; border-left: 4px solid #FF6B6B; }
.no-contacts { text-align: center; color: #666; padding: 40px; }
</style>
</head>
<body>
<div class="container">
<div class="header">
<div><h1>Contact Form Submissions</h1><p style="margin: 5px 0 0;">MetaGrow Wealth Manager Dashboard</p></div>
<form method="POST" action="/admin/logout" style="margin: 0;"><button type="submit" class="logout-btn">Logout</button></form>
</div>
<div class="stats">
<div class="stat-card"><div class="stat-number" id="stat-total">{{.Total}}</div><div>Total Submissions</div></div>
<div class="stat-card"><div class="stat-number">{{.Today}}</div><div>Today's Submissions</div></div>
<div class="stat-card"><div class="stat-number">{{.WithService}}</div><div>With Service Interest</div></div>
</div>
<div id="contacts">
{{if not .Contacts}}<div class="no-contacts">No contact form submissions yet.</div>{{end}}
{{range .Contacts}}
<div class="contact-card">
<div class="contact-header"><div class="contact-name">{{.Name}}</div><div class="contact-date">{{.Submitted}}</div></div>
<div class="contact-details">
<div><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></div>
<div><strong>Phone:</strong> {{.Phone}}</div>
<div><strong>Service:</strong> {{.Service}}</div>
<div><strong>ID:</strong> #{{.ID}}</div>
</div>
<div class="message-box"><strong>Message:</strong><br>{{.Message}}</div>
</div>
{{end}}
</div>
</div>
<script>
(function() {
  const proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  const ws = new WebSocket(proto + location.host + '/admin/ws');
  ws.onmessage = function(ev) {
    const c = JSON.parse(ev.data);
    const list = document.getElementById('contacts');
    const empty = list.querySelector('.no-contacts');
    if (empty) { empty.remove(); }
    const card = document.createElement('div');
    card.className = 'contact-card';
    const name = document.createElement('div');
    name.className = 'contact-name';
    name.textContent = c.firstName + ' ' + c.lastName + ' (#' + c.id + ')';
    const msg = document.createElement('div');
    msg.className = 'message-box';
    msg.textContent = c.message;
    card.appendChild(name);
    card.appendChild(msg);
    list.prepend(card);
    const total = document.getElementById('stat-total');
    total.textContent = String(parseInt(total.textContent, 10) + 1);
  };
})();
</script>
</body>
</html>`))
