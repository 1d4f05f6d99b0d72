package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"luxestay/internal/concierge/dialog"
	conciergeerrors "luxestay/internal/concierge/errors"
	"luxestay/internal/concierge/session"
	"luxestay/internal/hotels/gateway"
	"luxestay/pkg/config"
	apperrors "luxestay/pkg/errors"
	"luxestay/pkg/model"

	"github.com/google/uuid"
)

const ReplyChatFailed = "Sorry, I couldn't process your request right now. Please try again."

// Searcher is the slice of the hotel service the concierge needs.
type Searcher interface {
	Search(ctx context.Context, opts gateway.SearchOptions) (*model.HotelSearchResult, error)
}

// Replier answers free-form travel questions.
type Replier interface {
	Reply(ctx context.Context, history []model.ChatMessage, message string) (string, error)
}

type ConciergeService interface {
	Create(ctx context.Context, userID string) (*model.ConciergeTurn, error)
	Get(ctx context.Context, id string) (*session.Session, error)
	Send(ctx context.Context, id, message string) (*model.ConciergeTurn, error)
	Reset(ctx context.Context, id string) (*model.ConciergeTurn, error)
	Results(ctx context.Context, id string) (*session.Results, error)
	Delete(ctx context.Context, id string) error
}

type conciergeService struct {
	store    session.Store
	searcher Searcher
	chat     Replier
	cfg      *config.Config
	now      func() time.Time
	newID    func() string
}

func NewConciergeService(store session.Store, searcher Searcher, chat Replier, cfg *config.Config) ConciergeService {
	return &conciergeService{
		store:    store,
		searcher: searcher,
		chat:     chat,
		cfg:      cfg,
		now: func() time.Time {
			if cfg.Location != nil {
				return time.Now().In(cfg.Location)
			}
			return time.Now()
		},
		newID: uuid.NewString,
	}
}

func ResultsPath(id string) string {
	return fmt.Sprintf("/api/v1/concierge/sessions/%s/results", id)
}

func (s *conciergeService) Create(ctx context.Context, userID string) (*model.ConciergeTurn, error) {
	now := s.now()
	sess := &session.Session{
		ID:        s.newID(),
		UserID:    userID,
		Dialog:    dialog.Session{State: dialog.Idle},
		CreatedAt: now,
		UpdatedAt: now,
	}
	sess.Append(model.RoleAssistant, dialog.Greeting)

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, apperrors.Internal("Failed to create session", err)
	}

	s.cfg.Log.Info("Concierge session created", "session_id", sess.ID, "user_id", userID)
	return turn(sess, dialog.Greeting), nil
}

func (s *conciergeService) Get(ctx context.Context, id string) (*session.Session, error) {
	return s.load(ctx, id)
}

func (s *conciergeService) Send(ctx context.Context, id, message string) (*model.ConciergeTurn, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperrors.Validation("Message is required", map[string]any{"message": "Message is required"})
	}

	unlock, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	next, out := dialog.Transition(sess.Dialog, message, s.now())
	reply := out.Reply
	resultsURL := ""

	switch out.Effect {
	case dialog.EffectChat:
		text, err := s.chat.Reply(ctx, sess.History, message)
		if err != nil {
			s.cfg.Log.Warn("Concierge chat delegation failed", "session_id", id, "error", err)
			return turn(sess, ReplyChatFailed), nil
		}
		reply = text

	case dialog.EffectSearch:
		sess.Results = s.search(ctx, id, *out.Search)
		resultsURL = ResultsPath(id)
		reply = fmt.Sprintf("Check the results at %s.", resultsURL)
	}

	if out.Rejected() {
		s.cfg.Log.Debug("Concierge utterance rejected", "session_id", id, "state", sess.Dialog.State.String(), "reason", out.Err)
	}

	sess.Dialog = next
	sess.Append(model.RoleUser, message)
	sess.Append(model.RoleAssistant, reply)
	sess.Cap(s.cfg.ConciergeHistoryLimit)
	sess.UpdatedAt = s.now()

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, apperrors.Internal("Failed to save session", err)
	}

	t := turn(sess, reply)
	t.ResultsURL = resultsURL
	if out.Err != nil {
		t.Rejection = out.Err.Error()
	}
	return t, nil
}

// search never fails the turn: an upstream error leaves an empty result set.
func (s *conciergeService) search(ctx context.Context, id string, req dialog.SearchRequest) *session.Results {
	results := &session.Results{
		Criteria:   req,
		Hotels:     []model.Hotel{},
		SearchedAt: s.now(),
	}

	found, err := s.searcher.Search(ctx, gateway.SearchOptions{
		Query:        req.Destination,
		CheckInDate:  req.CheckIn,
		CheckOutDate: req.CheckOut,
		Adults:       req.PartySize,
	})
	if err != nil {
		s.cfg.Log.Warn("Concierge hotel search failed", "session_id", id, "destination", req.Destination, "error", err)
		return results
	}

	if found.Hotels != nil {
		results.Hotels = found.Hotels
	}
	results.NextPageToken = found.NextPageToken
	s.cfg.Log.Info("Concierge hotel search completed", "session_id", id, "destination", req.Destination, "count", len(results.Hotels))
	return results
}

// Reset clears the conversation and any half-filled dialog. The last result
// set stays available.
func (s *conciergeService) Reset(ctx context.Context, id string) (*model.ConciergeTurn, error) {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.Dialog = dialog.Session{State: dialog.Idle}
	sess.History = nil
	sess.Append(model.RoleAssistant, dialog.ClearedReply)
	sess.UpdatedAt = s.now()

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, apperrors.Internal("Failed to save session", err)
	}
	return turn(sess, dialog.ClearedReply), nil
}

func (s *conciergeService) Results(ctx context.Context, id string) (*session.Results, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Results == nil {
		return &session.Results{Hotels: []model.Hotel{}}, nil
	}
	return sess.Results, nil
}

func (s *conciergeService) Delete(ctx context.Context, id string) error {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		return storeError(err, id)
	}
	s.cfg.Log.Info("Concierge session deleted", "session_id", id)
	return nil
}

// lock validates the ID before touching the store so malformed IDs never
// create lock keys.
func (s *conciergeService) lock(ctx context.Context, id string) (func(), error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	unlock, err := s.store.Lock(ctx, id)
	if err != nil {
		if errors.Is(err, conciergeerrors.ErrSessionBusy) {
			s.cfg.Log.Warn("Concierge session busy", "session_id", id, "error", err)
			return nil, apperrors.Conflict("Session is busy, please retry").WithCause(err)
		}
		return nil, apperrors.Internal("Failed to lock session", err)
	}
	return unlock, nil
}

func (s *conciergeService) load(ctx context.Context, id string) (*session.Session, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, id)
	}
	return sess, nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.InvalidInput("Invalid session ID format").WithCause(conciergeerrors.ErrInvalidSession)
	}
	return nil
}

func storeError(err error, id string) error {
	if errors.Is(err, conciergeerrors.ErrSessionNotFound) {
		return apperrors.NotFoundWithID("Session", id)
	}
	return apperrors.Internal("Failed to load session", err)
}

func turn(sess *session.Session, reply string) *model.ConciergeTurn {
	return &model.ConciergeTurn{
		SessionID: sess.ID,
		State:     sess.Dialog.State.String(),
		Reply:     reply,
	}
}
