package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// RefreshSession is the server-side state backing a refresh token.
type RefreshSession struct {
	Token      string
	UserId     uuid.UUID
	Role       string
	EmployeeId string
	ExpiresAt  time.Time
}

// RefreshTokenRepository keeps refresh sessions in process memory. Tokens
// expire from the cache on their own; Revoke removes them eagerly on logout.
type RefreshTokenRepository struct {
	cache *cache.Cache
}

func NewRefreshTokenRepository(ttl time.Duration) *RefreshTokenRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &RefreshTokenRepository{
		cache: c,
	}
}

func (r *RefreshTokenRepository) Save(session *RefreshSession) {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return
	}
	r.cache.Set(session.Token, session, ttl)
}

func (r *RefreshTokenRepository) Get(token string) (*RefreshSession, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(*RefreshSession), true
	}
	return nil, false
}

func (r *RefreshTokenRepository) Revoke(token string) {
	r.cache.Delete(token)
}
