package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every module that serves HTTP routes under the
// application middleware stack (accounts, bookings, hotels, chat, concierge).
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// HandlerFunc adapts a plain route-registration function to Handler.
type HandlerFunc func(*httprouter.Router)

func (f HandlerFunc) RegisterRoutes(router *httprouter.Router) {
	f(router)
}
