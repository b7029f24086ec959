package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"

	"github.com/jhoicas/everledger-liquor/internal/application/dto"
)

// HeaderIdempotencyKey permite reintentar una escritura sin re-ejecutarla.
const (
	HeaderIdempotencyKey      = "Idempotency-Key"
	HeaderIdempotencyReplayed = "Idempotent-Replayed"
)

const defaultIdempotencyTTL = 10 * time.Minute

// cachedResponse es la respuesta guardada para una clave. pending marca una ejecución en curso.
type cachedResponse struct {
	status      int
	body        []byte
	contentType string
	pending     bool
}

// IdempotencyCache guarda respuestas por (llamador, método, ruta, clave) durante ttl.
type IdempotencyCache struct {
	ttl   time.Duration
	cache *gocache.Cache
}

// NewIdempotencyCache crea la caché; ttl <= 0 usa 10 minutos.
func NewIdempotencyCache(ttl time.Duration) *IdempotencyCache {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyCache{
		ttl:   ttl,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (ic *IdempotencyCache) get(key string) (cachedResponse, bool) {
	v, found := ic.cache.Get(key)
	if !found {
		return cachedResponse{}, false
	}
	resp, ok := v.(cachedResponse)
	return resp, ok
}

// claim reserva la clave; false si ya hay respuesta o ejecución en curso.
func (ic *IdempotencyCache) claim(key string) bool {
	return ic.cache.Add(key, cachedResponse{pending: true}, ic.ttl) == nil
}

func (ic *IdempotencyCache) store(key string, resp cachedResponse) {
	ic.cache.Set(key, resp, ic.ttl)
}

func (ic *IdempotencyCache) release(key string) {
	ic.cache.Delete(key)
}

// Idempotency repite la respuesta guardada cuando llega una escritura con una clave ya usada.
// Debe ir después de AuthMiddleware: la clave se aísla por llamador.
// Los 5xx no se guardan para que el cliente pueda reintentar.
func Idempotency(ic *IdempotencyCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(HeaderIdempotencyKey)
		if ic == nil || header == "" {
			return c.Next()
		}
		key := GetCallerAddress(c) + "|" + c.Method() + "|" + c.Path() + "|" + header

		if !ic.claim(key) {
			prev, ok := ic.get(key)
			if !ok || prev.pending {
				return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
					Code:    "IDEMPOTENCY_IN_PROGRESS",
					Message: "hay una petición en curso con la misma Idempotency-Key",
				})
			}
			c.Set(HeaderIdempotencyReplayed, "true")
			if prev.contentType != "" {
				c.Set(fiber.HeaderContentType, prev.contentType)
			}
			return c.Status(prev.status).Send(prev.body)
		}

		// Si el handler falla, responde 5xx o entra en pánico, la clave se libera.
		stored := false
		defer func() {
			if !stored {
				ic.release(key)
			}
		}()

		if err := c.Next(); err != nil {
			return err
		}
		status := c.Response().StatusCode()
		if status >= fiber.StatusInternalServerError {
			return nil
		}
		ic.store(key, cachedResponse{
			status:      status,
			body:        append([]byte(nil), c.Response().Body()...),
			contentType: string(c.Response().Header.ContentType()),
		})
		stored = true
		return nil
	}
}
