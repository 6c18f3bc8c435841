package handler

import (
	"net/http"

	"github.com/msomdec/wysider/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	account *service.AccountService,
	strategies *service.StrategyService,
	chat *service.ChatService,
	admin *service.AdminService,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	accountHandler := NewAccountHandler(account)
	conceptHandler := NewConceptHandler(strategies)
	chatHandler := NewChatHandler(chat)
	adminHandler := NewAdminHandler(admin)
	exportHandler := NewExportHandler()
	sessionHandler := NewSessionHandler()

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	mux.Handle("GET /api/session", OptionalAuth(auth, http.HandlerFunc(sessionHandler.HandleResolve)))
	mux.Handle("POST /api/session/navigate", OptionalAuth(auth, http.HandlerFunc(sessionHandler.HandleNavigate)))

	mux.Handle("POST /api/account/redeem", RequireAuth(auth, http.HandlerFunc(accountHandler.HandleRedeem)))

	mux.Handle("POST /api/strategy", RequireAuth(auth, http.HandlerFunc(conceptHandler.HandleGenerate)))
	mux.Handle("GET /api/concepts", RequireAuth(auth, http.HandlerFunc(conceptHandler.HandleList)))
	mux.Handle("POST /api/concepts", RequireAuth(auth, http.HandlerFunc(conceptHandler.HandleSave)))
	mux.Handle("POST /api/export", RequireAuth(auth, http.HandlerFunc(exportHandler.HandleExport)))

	mux.Handle("GET /api/chat", RequireAuth(auth, http.HandlerFunc(chatHandler.HandleHistory)))
	mux.Handle("POST /api/chat", RequireAuth(auth, http.HandlerFunc(chatHandler.HandleSend)))

	mux.Handle("GET /api/admin/users", RequireAdmin(auth, http.HandlerFunc(adminHandler.HandleListUsers)))
}
