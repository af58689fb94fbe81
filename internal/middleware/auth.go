package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/eliteprops/backend/api/handler"
	"github.com/eliteprops/backend/api/transport"
	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/pkg/httpcontext"
	authUC "github.com/eliteprops/backend/usecase/auth"
)

// AdminAuth guards back office routes. It resolves the bearer token to a live
// admin session and stashes the session attributes for downstream handlers.
func AdminAuth(uc *authUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			tokenString := extractToken(ctx)
			if tokenString == "" {
				reject(ctx, domain.ErrUnauthorized)
				return
			}

			stdCtx, cancel := adapter.Attach(ctx)
			defer cancel()

			session, err := uc.Authenticate(stdCtx, tokenString)
			if err != nil {
				logger.Warn("admin auth failed", zap.Error(err))
				reject(ctx, err)
				return
			}

			ctx.SetUserValue(handler.CtxProfileID, session.ProfileID)
			ctx.SetUserValue(handler.CtxSessionID, session.ID)
			next(ctx)
		}
	}
}

func reject(ctx *fasthttp.RequestCtx, err error) {
	status := http.StatusUnauthorized
	code := string(domain.ErrCodeUnauthorized)
	if domain.IsDomainError(err, domain.ErrCodeForbidden) {
		status = http.StatusForbidden
		code = string(domain.ErrCodeForbidden)
	}
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(transport.NewError(code, err.Error(), nil))
	ctx.SetBody(body)
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
