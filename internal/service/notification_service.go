package service

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/geekofia/quizdesk/config"
	"github.com/geekofia/quizdesk/internal/model"
	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// Quiz dates are presented in campus local time.
var istLocation = mustLoadIST()

func mustLoadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

type NotificationService interface {
	SendQuizNotification(ctx context.Context, recipients []string, quiz *model.Quiz) error
}

type sendgridNotifier struct {
	key        string
	from       *sgmail.Email
	hostDomain string
	tmpl       *template.Template
}

func NewNotificationService(cfg *config.Config) (NotificationService, error) {
	return NewSendgridNotifier(
		cfg.Mail.SendgridAPIKey,
		cfg.Mail.FromName,
		cfg.Mail.FromEmail,
		cfg.Server.HostDomain,
		"templates/quiz-notification.html",
	)
}

func NewSendgridNotifier(key, fromName, fromEmail, hostDomain, templatePath string) (NotificationService, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("parsing quiz notification template: %w", err)
	}
	return &sendgridNotifier{
		key:        key,
		from:       sgmail.NewEmail(fromName, fromEmail),
		hostDomain: hostDomain,
		tmpl:       tmpl,
	}, nil
}

type quizNotificationData struct {
	Title     string
	StartDate string
	EndDate   string
	URL       string
	Semester  string
	Branch    string
	Marks     int
}

// SendQuizNotification renders the notification template for the quiz and
// sends one mail with every recipient on the same "to" list.
func (n *sendgridNotifier) SendQuizNotification(ctx context.Context, recipients []string, quiz *model.Quiz) error {
	if len(recipients) == 0 {
		return nil
	}

	html, err := n.render(quiz)
	if err != nil {
		return err
	}

	quizURL := n.quizURL(quiz)
	p := sgmail.NewPersonalization()
	p.Subject = fmt.Sprintf("🧪 Attend %s", quiz.Title)
	for _, to := range recipients {
		p.AddTos(sgmail.NewEmail("", to))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(n.from)
	m.AddPersonalizations(p)
	m.AddContent(
		sgmail.NewContent("text/plain", quizURL),
		sgmail.NewContent("text/html", html),
	)

	req := sendgrid.GetRequest(n.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("sending quiz notification: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sending quiz notification: sendgrid returned %d", res.StatusCode)
	}

	log.Info().Str("quizId", quiz.ID.Hex()).Int("recipients", len(recipients)).Msg("Quiz notification delivered to relay")
	return nil
}

func (n *sendgridNotifier) render(quiz *model.Quiz) (string, error) {
	data := quizNotificationData{
		Title:     quiz.Title,
		StartDate: quiz.StartDate.In(istLocation).Format("02/01/2006 03:04 PM"),
		EndDate:   quiz.EndDate.In(istLocation).Format("02/01/2006 03:04 PM"),
		URL:       n.quizURL(quiz),
		Semester:  quiz.Semester,
		Branch:    quiz.Branch,
		Marks:     len(quiz.Questions),
	}

	var buf strings.Builder
	if err := n.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering quiz notification template: %w", err)
	}
	return buf.String(), nil
}

func (n *sendgridNotifier) quizURL(quiz *model.Quiz) string {
	return fmt.Sprintf("%s/quiz/%s", strings.TrimRight(n.hostDomain, "/"), quiz.ID.Hex())
}
