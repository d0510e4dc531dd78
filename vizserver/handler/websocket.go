package handler

import (
	"fmt"
	"log"
	"net/http"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/basselfa/pedsim-ros/common/utils"
	"github.com/basselfa/pedsim-ros/vizserver/types"
)

type wsincomingmessage struct {
	messageType int
	p           []byte
	err         error
}

func Websocket(sims *types.VizSimulationMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		vizsim := sims.Get(vars["id"])

		if vizsim == nil {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("SIMULATION NOT FOUND !"))
			return
		}

		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		watcher := types.NewWatcher(c)
		vizsim.SetWatcher(watcher)

		defer func(c *websocket.Conn) {
			vizsim.RemoveWatcher(watcher.GetId())
			c.Close()
		}(c)

		clientclosedsocket := make(chan bool)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

		// Reading incoming messages is mandatory to notice when the
		// websocket is closed client side
		incomingmsg := make(chan wsincomingmessage)
		go func(client *websocket.Conn, ch chan wsincomingmessage) {
			messageType, p, err := client.ReadMessage()
			ch <- wsincomingmessage{messageType, p, err}
		}(c, incomingmsg)

		vizmsgchan := make(chan interface{})
		notify.Start("viz:message:"+vizsim.GetId(), vizmsgchan)
		defer notify.Stop("viz:message:"+vizsim.GetId(), vizmsgchan)

		for {
			select {
			case <-clientclosedsocket:
				{
					log.Println("<-clientclosedsocket")
					return
				}
			case msg := <-incomingmsg:
				{
					if msg.err != nil {
						return
					}
				}
			case vizmsg := <-vizmsgchan:
				{
					vizmsgString, ok := vizmsg.(string)
					utils.Assert(ok, "Failed to cast vizmessage into string")

					c.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf("{\"type\":\"frame\", \"data\": %s}", vizmsgString)))
				}
			}
		}
	}
}
