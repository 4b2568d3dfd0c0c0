package service

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

func SendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent, htmlContent string) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		log.Println("UYARI: SENDGRID_API_KEY tanımlı değil. E-posta gönderilmeyecek.")
		return fmt.Errorf("SENDGRID_API_KEY tanımlı değil")
	}

	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		log.Println("UYARI: SENDGRID_FROM_EMAIL tanımlı değil. E-posta gönderilmeyecek.")
		return fmt.Errorf("SENDGRID_FROM_EMAIL tanımlı değil")
	}

	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Randevu Asistanı"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmailAddress)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("SendGrid ile e-posta gönderilemedi (%s): %v", toEmailAddress, err)
		return fmt.Errorf("e-posta SendGrid üzerinden gönderilemedi: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Printf("E-posta gönderildi: %s (Konu: %s). Durum: %d", toEmailAddress, subject, response.StatusCode)
		return nil
	}

	log.Printf("SendGrid başarısız durum döndü (%s). Durum: %d, Gövde: %s",
		toEmailAddress, response.StatusCode, response.Body)
	return fmt.Errorf("SendGrid başarısız durum döndü %d: %s", response.StatusCode, response.Body)
}

func SendSMS(toNumber string, messageBody string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")

	if accountSid == "" || authToken == "" || fromNumber == "" {
		log.Println("UYARI: Twilio bilgileri (SID, Token veya From Number) eksik. SMS gönderilmeyecek.")
		return fmt.Errorf("Twilio bilgileri eksik")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(messageBody)

	_, err := client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("SMS gönderilemedi: %w", err)
	}
	return nil
}
