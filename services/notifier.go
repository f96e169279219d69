package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/models"
	"github.com/resend/resend-go/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DepositNotifier tells a player that an admin changed their deposit's status.
type DepositNotifier interface {
	DepositStatusChanged(ctx context.Context, d models.Deposit) error
}

type NopNotifier struct{}

func (NopNotifier) DepositStatusChanged(context.Context, models.Deposit) error {
	return nil
}

type ResendNotifier struct {
	client *resend.Client
	from   string
	amount *message.Printer
}

func NewResendNotifier(apiKey, from string) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		amount: message.NewPrinter(language.English),
	}
}

func (n *ResendNotifier) DepositStatusChanged(ctx context.Context, d models.Deposit) error {
	if !strings.Contains(d.Email, "@") {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{d.Email},
		Subject: fmt.Sprintf("Deposit %s", d.Status),
		Html:    n.depositBody(d),
	}
	if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send deposit mail: %w", err)
	}
	return nil
}

func (n *ResendNotifier) depositBody(d models.Deposit) string {
	return fmt.Sprintf(`<p>Hi %s,</p>
<p>Your deposit of <strong>&#8377;%s</strong> (UTR %s) is now <strong>%s</strong>.</p>
<p>Submitted on %s.</p>`,
		html.EscapeString(d.Username),
		n.amount.Sprintf("%.2f", d.Amount),
		html.EscapeString(d.UTR),
		html.EscapeString(d.Status),
		html.EscapeString(d.CreatedAtDisplay),
	)
}
