package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/depothq/depot/pkg/config"
	"github.com/depothq/depot/pkg/identity"
	"github.com/depothq/depot/pkg/server/store"
	gormstore "github.com/depothq/depot/pkg/server/store/gorm"
)

type Server struct {
	ProjectsStore store.ProjectsStore
	ReleasesStore store.ReleasesStore
	JournalsStore store.JournalsStore
	Config        *config.RegistryConfig
	Router        *mux.Router
	DB            *gorm.DB
	srv           *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.RegistryConfig,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		// identity.Inject sits outside the access logger so the logger
		// sees the identity the auth middleware records.
		Handler: identity.Inject(handlers.CustomLoggingHandler(os.Stdout, router, accessLogFormatter)),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		ProjectsStore: gormstore.NewProjectsStore(db),
		ReleasesStore: gormstore.NewReleasesStore(db),
		JournalsStore: gormstore.NewJournalsStore(db),
		Config:        cfg,
		Router:        router,
		DB:            db,
		srv:           srv,
	}
}

// accessLogFormatter writes Apache common log lines with the
// authenticated admin username in the user field.
func accessLogFormatter(w io.Writer, params handlers.LogFormatterParams) {
	username := "-"
	if id, ok := identity.Get(params.Request.Context()); ok {
		username = id.Username
	}

	_, _ = fmt.Fprintf(w, "%s - %s [%s] %q %d %d\n",
		params.Request.RemoteAddr,
		username,
		params.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
		params.Request.Method+" "+params.URL.RequestURI()+" "+params.Request.Proto,
		params.StatusCode,
		params.Size,
	)
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
