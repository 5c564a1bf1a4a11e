package web

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"autopecas-web/pkg/config"
)

// Chaves usadas na sessão.
const (
	sessionUserIDKey   = "user_id"
	sessionUserNameKey = "user_name"
	sessionFlashKey    = "flashes"
)

// NewSessionStore cria o store de sessões com o TTL configurado. storage nil
// usa o armazenamento em memória padrão do Fiber; com SESSION_STORE=redis é
// passado o adaptador de internal/infrastructure/redisstore.
func NewSessionStore(cfg config.SessionConfig, storage fiber.Storage) *session.Store {
	sessCfg := session.Config{
		Expiration:     time.Duration(cfg.TTLMinutes) * time.Minute,
		KeyLookup:      "cookie:session_id",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	}
	if storage != nil {
		sessCfg.Storage = storage
	}
	return session.New(sessCfg)
}

// FlashMessage mensagem de exibição única na próxima página renderizada.
// Category define o estilo: "success", "error" ou "warning".
type FlashMessage struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// flash acrescenta uma mensagem à lista pendente da sessão. As mensagens são
// serializadas como JSON em string para não depender de registro gob no
// armazenamento da sessão.
func flash(sess *session.Session, category, text string) {
	msgs := pendingFlashes(sess)
	msgs = append(msgs, FlashMessage{Category: category, Text: text})
	raw, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	sess.Set(sessionFlashKey, string(raw))
}

// consumeFlashes devolve as mensagens pendentes e as remove da sessão
// (exibição única). O caller é responsável por salvar a sessão.
func consumeFlashes(sess *session.Session) []FlashMessage {
	msgs := pendingFlashes(sess)
	if len(msgs) > 0 {
		sess.Delete(sessionFlashKey)
	}
	return msgs
}

func pendingFlashes(sess *session.Session) []FlashMessage {
	raw, ok := sess.Get(sessionFlashKey).(string)
	if !ok || raw == "" {
		return nil
	}
	var msgs []FlashMessage
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		return nil
	}
	return msgs
}
