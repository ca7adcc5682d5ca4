package ses

import (
	"context"
	"fmt"
	"html"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(ctx context.Context, region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendImportSummary(ctx context.Context, toEmail string, summary domain.ImportSummary) error {
	subject := fmt.Sprintf("Tally import complete: %s", summary.FileName)
	mastersURL := s.frontendURL + "/master/items"
	textBody := buildSummaryText(summary, mastersURL)
	htmlBody := buildSummaryHTML(summary, mastersURL)
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildSummaryText(summary domain.ImportSummary, mastersURL string) string {
	c := summary.Counts
	return fmt.Sprintf("Your Tally backup %s was imported.\n\nItems: %d\nLedgers: %d\nParties: %d\nVouchers (not posted): %d\n\nReview your masters at %s\n\nImport ID: %s\n",
		summary.FileName, c.Items, c.Ledgers, c.Parties, c.Vouchers, mastersURL, summary.ImportID)
}

func buildSummaryHTML(summary domain.ImportSummary, mastersURL string) string {
	c := summary.Counts
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Tally import complete</h2>
  <p>Your Tally backup <strong>%s</strong> was imported.</p>
  <table style="border-collapse: collapse;">
    <tr><td style="padding: 4px 12px;">Items</td><td>%d</td></tr>
    <tr><td style="padding: 4px 12px;">Ledgers</td><td>%d</td></tr>
    <tr><td style="padding: 4px 12px;">Parties</td><td>%d</td></tr>
    <tr><td style="padding: 4px 12px;">Vouchers (not posted)</td><td>%d</td></tr>
  </table>
  <p style="margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px;">Review masters</a>
  </p>
  <p style="color: #999; font-size: 12px;">Import ID %s</p>
</body>
</html>`, html.EscapeString(summary.FileName), c.Items, c.Ledgers, c.Parties, c.Vouchers, mastersURL, summary.ImportID)
}
