package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"kelaskata/internal/catalog"
	"kelaskata/internal/models"
)

// RecapService emails a score recap when a drill session ends, via
// Amazon SES. It stays disabled unless both a sender and a recipient
// address are configured.
type RecapService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	toEmail   string
	enabled   bool
}

// NewRecapService creates a new recap email service
func NewRecapService(awsRegion, fromEmail, fromName, toEmail string) (*RecapService, error) {
	if fromEmail == "" || toEmail == "" {
		log.Println("Recap email disabled: RECAP_FROM_EMAIL or RECAP_TO_EMAIL not configured")
		return &RecapService{enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Recap email enabled: from=%s, to=%s, region=%s", fromEmail, toEmail, awsRegion)

	return &RecapService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether the recap email service is enabled
func (s *RecapService) IsEnabled() bool {
	return s.enabled
}

// SendSessionRecap sends the end-of-session score summary
func (s *RecapService) SendSessionRecap(ctx context.Context, session *models.DrillSession, results []models.AssessmentResult) error {
	if !s.enabled {
		log.Printf("Skipping recap email (service disabled): session %s", session.Code)
		return nil
	}

	catalogName := session.Catalog
	var items map[string]models.VocabItem
	if cat, ok := catalog.Get(session.Catalog); ok {
		catalogName = cat.Name
		items = make(map[string]models.VocabItem)
		for _, item := range cat.Resolve(session.ItemOrder) {
			items[item.ID] = item
		}
	}

	fullyCorrect := 0
	var lines []string
	for _, result := range results {
		if result.Submitted() && *result.Reading && *result.Meaning && *result.Usage {
			fullyCorrect++
		}
		label := result.ItemID
		if item, ok := items[result.ItemID]; ok {
			label = fmt.Sprintf("%s (%s)", item.PrimaryForm, item.Meaning)
		}
		lines = append(lines, fmt.Sprintf("- %s: %d points", label, result.TotalScore))
	}

	subject := fmt.Sprintf("Drill recap %s: %d points", session.Code, session.TotalScore)
	textBody := fmt.Sprintf(`Session %s (%s, tier %s) has ended.

Total score: %d
Best streak: %d
Items assessed: %d of %d
Fully correct: %d

%s
`, session.Code, catalogName, session.Tier,
		session.TotalScore, session.MaxStreak,
		len(results), len(session.ItemOrder), fullyCorrect,
		strings.Join(lines, "\n"))

	return s.sendEmail(ctx, subject, textBody)
}

// sendEmail sends a plain-text email using Amazon SES
func (s *RecapService) sendEmail(ctx context.Context, subject, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{s.toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", s.toEmail, err)
	}

	log.Printf("Email sent successfully: to=%s, subject=%s", s.toEmail, subject)
	return nil
}
