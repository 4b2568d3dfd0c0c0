package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"randevu/internal/entities"
)

// NotifyService fans a completed booking out to the business (email) and the
// customer (SMS). Sends run in background goroutines; a failed notification
// is logged and never reaches the user.
type NotifyService struct {
	BusinessName string
}

func NewNotifyService(businessName string) *NotifyService {
	if businessName == "" {
		businessName = "Randevu Asistanı"
	}
	return &NotifyService{BusinessName: businessName}
}

func (s *NotifyService) NotifyBookingCreated(req *entities.BookingRequest) {
	s.sendBusinessEmail(req)
	s.sendCustomerSMS(req)
}

func (s *NotifyService) sendBusinessEmail(req *entities.BookingRequest) {
	notifyEmail := os.Getenv("BUSINESS_NOTIFY_EMAIL")
	if notifyEmail == "" {
		log.Println("UYARI: BUSINESS_NOTIFY_EMAIL tanımlı değil. Randevu e-postası gönderilmeyecek.")
		return
	}

	emailData := entities.BookingEmailData{
		BusinessName: s.BusinessName,
		CustomerName: req.Name,
		Phone:        req.Phone,
		Service:      req.Service,
		DateText:     req.DateText,
		CurrentYear:  time.Now().Year(),
	}

	emailSubject := fmt.Sprintf("Yeni randevu talebi - %s", req.Name)
	plainTextBody := fmt.Sprintf(
		"Yeni bir randevu talebi alındı.\n\n"+
			"İsim: %s\n"+
			"Telefon: %s\n"+
			"Hizmet: %s\n"+
			"Tarih: %s\n",
		req.Name, req.Phone, req.Service, req.DateText,
	)

	tmplPath := filepath.Join("internal", "templates", "booking_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("UYARI: E-posta şablonu okunamadı (%s): %v", tmplPath, err)
	}

	var htmlBodyBuffer bytes.Buffer
	if tmpl != nil {
		if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
			log.Printf("UYARI: E-posta şablonu çalıştırılamadı (%s): %v", req.Name, err)
		}
	}
	htmlBody := htmlBodyBuffer.String()

	go func(toEmail, subject, plainBody, htmlBodyContent string) {
		if errEmail := SendEmailWithSendGrid(toEmail, s.BusinessName, subject, plainBody, htmlBodyContent); errEmail != nil {
			log.Printf("UYARI (arka plan): %s için randevu e-postası gönderilemedi: %v", req.Name, errEmail)
		}
	}(notifyEmail, emailSubject, plainTextBody, htmlBody)
}

func (s *NotifyService) sendCustomerSMS(req *entities.BookingRequest) {
	if req.Phone == "" {
		return
	}

	smsMessage := fmt.Sprintf("%s: Randevu talebiniz alındı!\nHizmet: %s\nTarih: %s\nEn kısa sürede sizi arayacağız.",
		s.BusinessName, req.Service, req.DateText)

	go func(toNumber, body string) {
		if errSMS := SendSMS(toNumber, body); errSMS != nil {
			log.Printf("UYARI (arka plan): Randevu kaydedildi ancak %s numarasına onay SMS'i gönderilemedi: %v", toNumber, errSMS)
		}
	}(req.Phone, smsMessage)
}
