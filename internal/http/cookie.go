package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// sessionCookieName es el nombre de la cookie que transporta la
// credencial de sesión. No hay variante por header Authorization.
const sessionCookieName = "token"

// setSessionCookie escribe la credencial como cookie HTTP-only. En
// producción la cookie viaja solo por HTTPS y permite uso cross-site;
// en desarrollo queda sin secure y restringida al mismo sitio.
func setSessionCookie(c *gin.Context, token string, ttl time.Duration, production bool) {
	sameSite := http.SameSiteStrictMode
	if production {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(sessionCookieName, token, int(ttl.Seconds()), "/", "", production, true)
}

// clearSessionCookie invalida la cookie del lado del cliente.
func clearSessionCookie(c *gin.Context, production bool) {
	sameSite := http.SameSiteStrictMode
	if production {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(sessionCookieName, "", -1, "/", "", production, true)
}
