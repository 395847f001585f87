package session

import "net/http"

// NewServer builds the HTTP server that mounts ServeWs on "/", "/ws", and
// "/ws/{session_id}" for addr, without starting to listen.
func (r *Registry) NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", r.ServeWs)
	return &http.Server{Addr: addr, Handler: mux}
}

// BindAndServe implements §4.G's bind_and_serve(addr): it blocks serving
// HTTP on srv until the listener stops, tolerating the expected
// http.ErrServerClosed a graceful srv.Shutdown produces.
func (r *Registry) BindAndServe(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
