package http

import (
	"log"
	"net/http"
	"time"
)

func Start(addr string, handler http.Handler) error {
	log.Printf("api listening on %s", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}
