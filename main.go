package main

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/km-arc/go-injector/framework/app"
	gohttp "github.com/km-arc/go-injector/framework/http"
	"github.com/km-arc/go-injector/framework/injector"
	"github.com/km-arc/go-injector/framework/routing"
)

// User is the demo resource.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserStore is an in-memory user repository.
type UserStore struct {
	mu     sync.RWMutex
	nextID int
	users  []User
}

func NewUserStore() *UserStore {
	return &UserStore{
		nextID: 3,
		users: []User{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
			{ID: 2, Name: "Bob", Email: "bob@example.com"},
		},
	}
}

func (s *UserStore) All() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *UserStore) Find(id int) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func (s *UserStore) Add(name, email string) User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := User{ID: s.nextID, Name: name, Email: email}
	s.nextID++
	s.users = append(s.users, u)
	return u
}

func main() {
	application := app.New() // loads .env automatically
	if err := application.Boot(); err != nil {
		log.Fatalf("boot error: %v", err)
	}

	// One shared store factory under the base identifier "store". Handlers
	// request the qualified "store users"; the wildcard rule matches "store".
	if err := application.RegisterSingleton("store", func(*injector.Injector, string) any {
		return NewUserStore()
	}); err != nil {
		log.Fatalf("register error: %v", err)
	}
	// Warm it on the app root: the root then owns the one shared instance,
	// and request scopes reach it through the parent walk instead of each
	// caching a store of their own.
	injector.MustResolve[*UserStore](application.Injector, "store")
	_ = application.RegisterValue("greeting", "Welcome to go-injector!")

	r := application.Router()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)
		scope := routing.Scope(req)

		// A request scope has no local "greeting"; the app root's wins.
		greeting := scope.ResolveParentFirst("greeting", injector.Value("hello"))
		res.Success(map[string]any{
			"message":    greeting,
			"request_id": injector.MustResolve[string](scope, routing.ScopeRequestID),
		})
	})

	r.Prefix("/api/v1", func(api *routing.Router) {

		// GET /api/v1/users
		api.Get("/users", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)
			scope := routing.Scope(req)

			// Resolved through the request scope: walks up to the app root.
			store := injector.MustResolve[*UserStore](scope, "store users")

			// Memoize the listing in the shared TTL cache.
			c := application.Cache()
			if cached, ok := c.Get("users.all"); ok {
				res.Success(cached)
				return
			}
			users := store.All()
			c.SetDefault("users.all", users)
			res.Success(users)
		})

		// POST /api/v1/users
		api.Post("/users", func(w http.ResponseWriter, req *http.Request) {
			request := gohttp.NewRequest(req)
			res := gohttp.NewResponse(w)

			var body struct {
				Name  string `json:"name"`
				Email string `json:"email"`
			}
			if err := request.Bind(&body); err != nil {
				res.Error(http.StatusBadRequest, err.Error())
				return
			}
			if body.Name == "" || body.Email == "" {
				res.Error(http.StatusUnprocessableEntity, "name and email are required")
				return
			}

			store := injector.MustResolve[*UserStore](routing.Scope(req), "store users")
			application.Cache().Delete("users.all")
			res.Created(store.Add(body.Name, body.Email))
		})

		// GET /api/v1/users/{id}
		api.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)

			id, err := strconv.Atoi(routing.Param(req, "id"))
			if err != nil {
				res.Error(http.StatusBadRequest, "invalid user id")
				return
			}
			store := injector.MustResolve[*UserStore](routing.Scope(req), "store users")
			u, ok := store.Find(id)
			if !ok {
				res.NotFound("user not found")
				return
			}
			res.Success(u)
		})
	})

	if err := application.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
