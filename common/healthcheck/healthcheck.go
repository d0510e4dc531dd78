package healthcheck

import (
	"encoding/json"
	"net/http"

	"github.com/basselfa/pedsim-ros/common/utils"
)

type HealthCheckServer struct {
	checkers []namedChecker
	port     string
}

type namedChecker struct {
	name    string
	handler HealthCheckHandler
}

type HealthChecks struct {
	Status bool
	Name   string
}

type HealthCheckHttpResponse struct {
	Checks     []HealthChecks
	StatusCode int
}

type HealthCheckHandler func() (err error, ok bool)

func (server *HealthCheckServer) httpHandler(w http.ResponseWriter, r *http.Request) {
	res := HealthCheckHttpResponse{
		Checks:     make([]HealthChecks, 0),
		StatusCode: 200,
	}

	for _, checker := range server.checkers {
		err, checkerRes := checker.handler()

		if err == nil {
			res.Checks = append(res.Checks, HealthChecks{
				Status: checkerRes,
				Name:   checker.name,
			})
		} else {
			res.StatusCode = http.StatusInternalServerError
		}
	}

	data, err := json.Marshal(res)
	utils.Check(err, "Failed to marshal response")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	w.Write(data)
}

func NewHealthCheckServer(port string) *HealthCheckServer {

	return &HealthCheckServer{
		port: port,
	}
}

func (server *HealthCheckServer) Listen() {
	http.HandleFunc("/health", server.httpHandler)

	err := http.ListenAndServe(":"+server.port, nil)
	utils.Check(err, "Failed to listen on :"+server.port)
}

func (server *HealthCheckServer) Register(name string, handler HealthCheckHandler) {
	server.checkers = append(server.checkers, namedChecker{
		name:    name,
		handler: handler,
	})
}
