package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"randevu/internal/dateparse"
	"randevu/internal/entities"
	"randevu/internal/session"
	"randevu/internal/utils"
)

// AppointmentSaver persists a completed booking.
type AppointmentSaver interface {
	CreateAppointment(ctx context.Context, req *entities.BookingRequest) error
}

// Notifier is told about bookings after they are saved.
type Notifier interface {
	NotifyBookingCreated(req *entities.BookingRequest)
}

// DepositLinker produces a payment link to attach to the confirmation reply.
type DepositLinker interface {
	CreateDepositSession(description string) (string, error)
}

// ChatService drives the multi-turn booking dialogue. One call handles one
// inbound message: look up the session, branch on its step, compose exactly
// one reply. The persistence call at the terminal step is awaited before the
// reply is composed and the session reset; notifications are not.
type ChatService struct {
	Store    session.Store
	Repo     AppointmentSaver
	Notifier Notifier      // optional
	Deposits DepositLinker // optional
	Now      func() time.Time
	Loc      *time.Location

	// ValidateDates gates the date step on the extractor: unparseable text
	// replies with the extractor's guidance and keeps the session at the
	// date step. Off by default; the raw text is persisted either way.
	ValidateDates bool
}

func NewChatService(store session.Store, repo AppointmentSaver, loc *time.Location) *ChatService {
	return &ChatService{
		Store: store,
		Repo:  repo,
		Now:   time.Now,
		Loc:   loc,
	}
}

// HandleMessage runs one turn of the conversation for userID and returns the
// reply plus a snapshot of the session after the turn.
func (s *ChatService) HandleMessage(ctx context.Context, userID, message, businessID string) (string, session.Session) {
	sess := s.Store.GetOrCreate(userID)
	sess.LastSeen = s.Now()

	msg := utils.Normalize(message)
	var reply string

	switch sess.Step {
	case session.StepAskRegion:
		sess.Service = message
		reply = fmt.Sprintf("%s bölgesi için fiyat bilgisi not edildi. Randevu oluşturmak ister misiniz? (evet / hayır)", sess.Service)
		sess.Step = session.StepConfirmAppointment

	case session.StepConfirmAppointment:
		if utils.ContainsAny(msg, "evet") {
			reply = "Harika! Lütfen ad soyadınızı yazın."
			sess.Step = session.StepAskName
		} else {
			reply = "Anlıyorum, başka bir sorunuz olursa yazabilirsiniz!"
			s.Store.Reset(sess)
		}

	case session.StepAskName:
		sess.Name = message
		reply = fmt.Sprintf("Teşekkürler %s! Telefon numaranızı alabilir miyim?", sess.Name)
		sess.Step = session.StepAskPhone

	case session.StepAskPhone:
		sess.Phone = message
		reply = "Hangi tarih ve saat uygun olur? (Örn: 28.02.2026 14:00)"
		sess.Step = session.StepAskDate

	case session.StepAskDate:
		reply = s.finishBooking(ctx, sess, message, businessID)

	default:
		if utils.ContainsAny(msg, "fiyat") {
			reply = "Lazer epilasyon fiyatlarımız bölgeye göre değişmektedir. Hangi bölgeye yaptırmak istiyorsunuz?"
			sess.Step = session.StepAskRegion
		} else if utils.ContainsAny(msg, "randevu") {
			reply = "Hangi hizmet için randevu oluşturmak istiyorsunuz?"
			sess.Step = session.StepAskRegion
		} else {
			reply = "Size nasıl yardımcı olabilirim?"
		}
	}

	return reply, *sess
}

// finishBooking runs the terminal step: record the date text, assemble the
// booking and hand it to persistence, then reset the session whatever the
// outcome.
func (s *ChatService) finishBooking(ctx context.Context, sess *session.Session, message, businessID string) string {
	var startsAt *time.Time
	if s.ValidateDates {
		res, err := dateparse.Parse(message, s.Now(), s.Loc)
		if err != nil {
			return err.Error()
		}
		if t, terr := time.Parse(time.RFC3339, res.ISO); terr == nil {
			startsAt = &t
		}
	}

	sess.Date = message

	// Recovery path for sessions that reached this step without a service:
	// ask again instead of booking half a record.
	if sess.Service == "" {
		sess.Step = session.StepAskRegion
		return "Hizmet bilgisi eksik. Lütfen hangi hizmeti istediğinizi belirtin."
	}

	req := &entities.BookingRequest{
		Name:       sess.Name,
		Phone:      sess.Phone,
		Service:    sess.Service,
		DateText:   sess.Date,
		StartsAt:   startsAt,
		BusinessID: businessID,
	}

	var reply string
	if err := s.Repo.CreateAppointment(ctx, req); err != nil {
		log.Printf("Error saving appointment for %s: %v", sess.Name, err)
		reply = "Randevu bilgileriniz alındı ancak kayıt sırasında bir hata oluştu.\nLütfen tekrar deneyin veya bizi arayın."
	} else {
		reply = fmt.Sprintf(
			"Randevunuz oluşturuldu ve kaydedildi! 🎉\n\n"+
				"👤 İsim: %s\n"+
				"📞 Telefon: %s\n"+
				"💇 Hizmet: %s\n"+
				"📅 Tarih: %s\n\n"+
				"Teşekkür ederiz, görüşmek üzere!",
			sess.Name, sess.Phone, sess.Service, sess.Date,
		)

		if s.Deposits != nil {
			if url, derr := s.Deposits.CreateDepositSession("Randevu kaporası - " + sess.Name); derr != nil {
				log.Printf("Deposit link could not be created for %s: %v", sess.Name, derr)
			} else {
				reply += "\n\n💳 Kapora ödemesi için: " + url
			}
		}
		if s.Notifier != nil {
			s.Notifier.NotifyBookingCreated(req)
		}
	}

	s.Store.Reset(sess)
	return reply
}
