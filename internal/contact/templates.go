package contact

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// templateData is the rendering context shared by both emails.
type templateData struct {
	Submission
	Date      string
	Year      int
	OwnerName string
	OwnerRole string
	LinkedIn  string
	Email     string
	Phone     string
}

func newTemplateData(s Submission, d *Dispatcher, now time.Time) templateData {
	return templateData{
		Submission: s,
		Date:       now.Format("January 2, 2006 15:04"),
		Year:       now.Year(),
		OwnerName:  d.ownerName,
		OwnerRole:  d.ownerRole,
		LinkedIn:   d.linkedIn,
		Email:      d.ownerEmail,
		Phone:      d.ownerPhone,
	}
}

var adminTemplate = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: -apple-system, 'Segoe UI', sans-serif; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <div style="background: linear-gradient(135deg, #a855f7 0%, #ec4899 100%); padding: 30px 20px; border-radius: 10px 10px 0 0; color: white;">
        <h1 style="margin: 0; font-size: 24px;">New Contact Form Submission</h1>
        <p style="margin: 5px 0 0 0;">Received on {{.Date}}</p>
      </div>
      <div style="background: #f9fafb; padding: 30px 20px;">
        <p style="margin-top: 0; color: #555;">You have received a new contact form submission. Details below:</p>
        <table style="width: 100%; border-collapse: collapse;">
          <tr><td style="padding: 8px; font-weight: 600;">Name</td><td style="padding: 8px;">{{.Name}}</td></tr>
          <tr><td style="padding: 8px; font-weight: 600;">Email</td><td style="padding: 8px;"><a href="mailto:{{.Submission.Email}}">{{.Submission.Email}}</a></td></tr>
          {{if .Submission.Phone}}<tr><td style="padding: 8px; font-weight: 600;">Phone</td><td style="padding: 8px;">{{.Submission.Phone}}</td></tr>{{end}}
          {{if .ServiceType}}<tr><td style="padding: 8px; font-weight: 600;">Service Type</td><td style="padding: 8px;">{{.ServiceType}}</td></tr>{{end}}
          {{if .Budget}}<tr><td style="padding: 8px; font-weight: 600;">Budget</td><td style="padding: 8px;">{{.Budget}}</td></tr>{{end}}
          {{if .Timeline}}<tr><td style="padding: 8px; font-weight: 600;">Timeline</td><td style="padding: 8px;">{{.Timeline}}</td></tr>{{end}}
        </table>
        <div style="background: white; padding: 20px; border-radius: 8px; border: 2px solid #e5e7eb; margin: 20px 0;">
          <div style="font-size: 12px; color: #6b7280; font-weight: 600; text-transform: uppercase;">Project Description / Message</div>
          <div style="white-space: pre-wrap; margin-top: 10px; line-height: 1.6; color: #374151;">{{.Message}}</div>
        </div>
        <p><a href="mailto:{{.Submission.Email}}" style="color: #7c3aed; font-weight: 600;">Reply via Email</a></p>
      </div>
      <div style="background: #f3f4f6; padding: 20px; border-radius: 0 0 10px 10px; text-align: center; font-size: 12px; color: #6b7280;">
        <p>&copy; {{.Year}} {{.OwnerName}} Portfolio | Auto-generated notification</p>
      </div>
    </div>
  </body>
</html>
`))

var userFuncs = template.FuncMap{
	"orDefault": func(s string) string {
		if s == "" {
			return "Not specified"
		}
		return s
	},
}

var userTemplate = template.Must(template.New("user").Funcs(userFuncs).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: -apple-system, 'Segoe UI', sans-serif; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <div style="background: linear-gradient(135deg, #a855f7 0%, #ec4899 100%); padding: 40px 20px; border-radius: 10px 10px 0 0; color: white; text-align: center;">
        <h1 style="margin: 0; font-size: 28px;">Thank You for Reaching Out!</h1>
        <p style="margin: 10px 0 0 0;">Your message has been received</p>
      </div>
      <div style="background: #f9fafb; padding: 30px 20px;">
        <p style="margin-top: 0; font-size: 16px; color: #555;">Hi {{.Name}},</p>
        <div style="background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #a855f7; line-height: 1.8;">
          <p>Thank you for getting in touch! I've received your inquiry and will review it carefully.</p>
          <p>Your submission details have been recorded and you can expect a response <strong>within 24-48 hours</strong>.</p>
        </div>
        <div style="background: white; padding: 20px; border-radius: 8px; margin: 15px 0; border-left: 4px solid #ec4899;">
          <p><strong>Service Interested:</strong> {{orDefault .ServiceType}}</p>
          <p><strong>Budget Range:</strong> {{orDefault .Budget}}</p>
          <p><strong>Timeline:</strong> {{orDefault .Timeline}}</p>
        </div>
        <p style="color: #92400e; background: #fef3c7; padding: 15px; border-radius: 8px;"><strong>Note:</strong> If your matter is urgent, feel free to reach out directly via phone or LinkedIn.</p>
        <p style="color: #666; margin-bottom: 10px;">Best regards,</p>
        <p style="margin: 0;"><strong style="font-size: 18px;">{{.OwnerName}}</strong><br/>
          <span style="color: #a855f7; font-weight: 600;">{{.OwnerRole}}</span></p>
      </div>
      <div style="background: #f3f4f6; padding: 25px 20px; border-radius: 0 0 10px 10px; text-align: center;">
        <p><a href="https://{{.LinkedIn}}" style="color: #a855f7; font-weight: 600;">LinkedIn</a> &bull;
           <a href="mailto:{{.Email}}" style="color: #a855f7; font-weight: 600;">Email</a> &bull;
           <a href="tel:{{.Phone}}" style="color: #a855f7; font-weight: 600;">Phone</a></p>
        <p style="margin: 20px 0 0 0; font-size: 12px; color: #9ca3af;">&copy; {{.Year}} {{.OwnerName}}. All rights reserved.</p>
      </div>
    </div>
  </body>
</html>
`))

func renderAdminEmail(data templateData) (string, error) {
	var b strings.Builder
	if err := adminTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering admin email: %w", err)
	}
	return b.String(), nil
}

func renderUserEmail(data templateData) (string, error) {
	var b strings.Builder
	if err := userTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering user email: %w", err)
	}
	return b.String(), nil
}
