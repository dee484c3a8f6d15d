package logic

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tarrantro/chatbot/ratelimit"
)

// ChatLogic orchestrates one chat turn: quota check, provider call and the
// write-back of window, counter and message.
type ChatLogic struct {
	users    UserStore
	messages MessageStore
	provider CompletionProvider
	limits   ratelimit.Limits
	timeout  time.Duration
	logger   *zap.Logger

	locks sync.Map // user name -> *sync.Mutex
}

func NewChatLogic(
	users UserStore,
	messages MessageStore,
	provider CompletionProvider,
	limits ratelimit.Limits,
	timeout time.Duration,
	logger *zap.Logger,
) *ChatLogic {
	return &ChatLogic{
		users:    users,
		messages: messages,
		provider: provider,
		limits:   limits,
		timeout:  timeout,
		logger:   logger,
	}
}

func (l *ChatLogic) userLock(name string) *sync.Mutex {
	lock, _ := l.locks.LoadOrStore(name, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Chat runs one turn for the named user and returns the reply text. Only
// answered turns consume quota: a denial or provider failure leaves the
// stored window and counter untouched.
//
// The per-user lock guards the quota evaluation and the write-back, never
// the provider call itself. Because the window is re-read and re-evaluated
// after the provider answers, a concurrent turn that consumed the last
// quota slot during the wait turns this one into a denial.
func (l *ChatLogic) Chat(ctx context.Context, userName, text string, now int64) (string, error) {
	lock := l.userLock(userName)

	lock.Lock()
	user, err := l.users.GetUserByName(userName)
	if err != nil {
		lock.Unlock()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{Name: userName}
		}
		return "", err
	}
	decision := l.limits.Evaluate(user.LastAccess, now)
	lock.Unlock()
	if !decision.Allowed {
		return "", &DenialError{Reason: decision.Reason}
	}

	callCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	candidates, err := l.provider.Complete(callCtx, text)
	if err != nil {
		kind := ProviderTransport
		if errors.Is(err, context.DeadlineExceeded) {
			kind = ProviderTimeout
		}
		l.logger.Warn("completion call failed",
			zap.String("user", userName), zap.Error(err))
		return "", &ProviderError{Kind: kind, Err: err}
	}
	if len(candidates) == 0 {
		l.logger.Warn("completion returned no candidates",
			zap.String("user", userName))
		return "", &ProviderError{Kind: ProviderMalformed}
	}
	reply := candidates[0]

	lock.Lock()
	defer lock.Unlock()

	user, err = l.users.GetUserByName(userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{Name: userName}
		}
		return "", err
	}
	// A turn stamped earlier can commit after a concurrent turn stamped
	// later. Clamp the commit timestamp to the window's newest entry so
	// the persisted window stays non-decreasing.
	if n := len(user.LastAccess); n > 0 && user.LastAccess[n-1] > now {
		now = user.LastAccess[n-1]
	}
	decision = l.limits.Evaluate(user.LastAccess, now)
	if !decision.Allowed {
		return "", &DenialError{Reason: decision.Reason}
	}

	msg, err := l.messages.CreateMessage(userName, text, reply, now, true)
	if err != nil {
		l.logger.Error("message insert failed",
			zap.String("user", userName), zap.Error(err))
		return "", &PersistError{Op: "message", Err: err}
	}
	if err := l.users.UpdateAccessState(user.ID, decision.Window, user.MessageCount+1); err != nil {
		l.logger.Error("user state update failed, message left pending",
			zap.String("user", userName),
			zap.Uint64("message_id", msg.ID),
			zap.Error(err))
		return "", &PersistError{Op: "user state", Err: err}
	}
	if err := l.messages.FinalizeMessage(msg.ID); err != nil {
		l.logger.Error("message finalize failed",
			zap.String("user", userName),
			zap.Uint64("message_id", msg.ID),
			zap.Error(err))
		return "", &PersistError{Op: "message finalize", Err: err}
	}

	return reply, nil
}
