package web

import (
	"flowdeck-api/internal/auth"
	"flowdeck-api/internal/label"
	"flowdeck-api/internal/profile"
	"flowdeck-api/internal/project"
	"flowdeck-api/internal/user"
	"flowdeck-api/middleware"

	"github.com/gorilla/mux"
)

// Router assembles the HTTP surface from the per-entity handlers
type Router struct {
	authHandlers    *auth.AuthHandlers
	userHandlers    *user.UserHandlers
	projectHandlers *project.ProjectHandlers
	labelHandlers   *label.LabelHandlers
	profileHandlers *profile.ProfileHandlers
	mw              *middleware.Middleware
}

func NewRouter(
	authHandlers *auth.AuthHandlers,
	userHandlers *user.UserHandlers,
	projectHandlers *project.ProjectHandlers,
	labelHandlers *label.LabelHandlers,
	profileHandlers *profile.ProfileHandlers,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		authHandlers:    authHandlers,
		userHandlers:    userHandlers,
		projectHandlers: projectHandlers,
		labelHandlers:   labelHandlers,
		profileHandlers: profileHandlers,
		mw:              mw,
	}
}

// SetupRoutes maps every route. All routes except POST /Auth are behind
// the bearer-token middleware.
func (rt *Router) SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	guard := rt.mw.AuthMiddleware

	r.HandleFunc("/Auth", rt.authHandlers.LoginHandler).Methods("POST")

	r.HandleFunc("/User", guard(rt.userHandlers.GetAll)).Methods("GET")
	r.HandleFunc("/User", guard(rt.userHandlers.Create)).Methods("POST")
	r.HandleFunc("/User/check-username/{username}", guard(rt.userHandlers.CheckUsername)).Methods("GET")
	r.HandleFunc("/User/{id:[0-9]+}", guard(rt.userHandlers.GetByID)).Methods("GET")
	r.HandleFunc("/User/{id:[0-9]+}", guard(rt.userHandlers.Update)).Methods("PUT")
	r.HandleFunc("/User/{id:[0-9]+}", guard(rt.userHandlers.Delete)).Methods("DELETE")

	r.HandleFunc("/Project", guard(rt.projectHandlers.GetAll)).Methods("GET")
	r.HandleFunc("/Project", guard(rt.projectHandlers.Create)).Methods("POST")
	r.HandleFunc("/Project/user/{userId:[0-9]+}", guard(rt.projectHandlers.GetByUserID)).Methods("GET")
	r.HandleFunc("/Project/check-name/{name}/user/{userId:[0-9]+}", guard(rt.projectHandlers.CheckName)).Methods("GET")
	r.HandleFunc("/Project/exists/{id:[0-9]+}", guard(rt.projectHandlers.Exists)).Methods("GET")
	r.HandleFunc("/Project/{id:[0-9]+}", guard(rt.projectHandlers.GetByID)).Methods("GET")
	r.HandleFunc("/Project/{id:[0-9]+}", guard(rt.projectHandlers.Update)).Methods("PUT")
	r.HandleFunc("/Project/{id:[0-9]+}", guard(rt.projectHandlers.Delete)).Methods("DELETE")

	r.HandleFunc("/Label", guard(rt.labelHandlers.GetAll)).Methods("GET")
	r.HandleFunc("/Label", guard(rt.labelHandlers.Create)).Methods("POST")
	r.HandleFunc("/Label/{id:[0-9]+}", guard(rt.labelHandlers.GetByID)).Methods("GET")
	r.HandleFunc("/Label/{id:[0-9]+}", guard(rt.labelHandlers.Update)).Methods("PUT")
	r.HandleFunc("/Label/{id:[0-9]+}", guard(rt.labelHandlers.Delete)).Methods("DELETE")

	r.HandleFunc("/Profile", guard(rt.profileHandlers.Get)).Methods("GET")
	r.HandleFunc("/Profile", guard(rt.profileHandlers.Update)).Methods("PUT")
	r.HandleFunc("/Profile/Password", guard(rt.profileHandlers.ChangePassword)).Methods("PUT")

	return r
}
