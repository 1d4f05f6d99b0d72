package handler

import (
	"net/http"

	"luxestay/internal/hotels/gateway"
	"luxestay/internal/hotels/service"
	httputil "luxestay/pkg/http"
	"luxestay/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type HotelHandler struct {
	service service.HotelService
	log     *logger.Logger
}

func NewHotelHandler(service service.HotelService, log *logger.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log,
	}
}

func (h *HotelHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts, err := searchOptions(r)
	if err != nil {
		h.writeError(w, "Search", err)
		return
	}

	result, err := h.service.Search(r.Context(), opts)
	if err != nil {
		h.writeError(w, "Search", err)
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "Search", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) GetByToken(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	query := r.URL.Query()

	hotel, err := h.service.GetByToken(r.Context(), ps.ByName("token"), query.Get("check_in_date"), query.Get("check_out_date"), locale(r))
	if err != nil {
		h.writeError(w, "GetByToken", err)
		return
	}

	if err := httputil.WriteSuccess(w, hotel); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByToken", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) GetByLink(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	hotel, err := h.service.GetByLink(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		h.writeError(w, "GetByLink", err)
		return
	}

	if err := httputil.WriteSuccess(w, hotel); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByLink", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *HotelHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/hotels/search", h.Search)
	router.GET("/api/v1/hotels/property/:token", h.GetByToken)
	router.GET("/api/v1/hotels/link", h.GetByLink)
}

// searchOptions reads the search query string. "destination" is accepted as
// an alias of "q".
func searchOptions(r *http.Request) (gateway.SearchOptions, error) {
	query := r.URL.Query()
	opts := gateway.SearchOptions{
		Query:         query.Get("q"),
		CheckInDate:   query.Get("check_in_date"),
		CheckOutDate:  query.Get("check_out_date"),
		SortBy:        query.Get("sort_by"),
		PropertyTypes: query.Get("property_types"),
		Amenities:     query.Get("amenities"),
		Rating:        query.Get("rating"),
		Brands:        query.Get("brands"),
		HotelClass:    query.Get("hotel_class"),
		NextPageToken: query.Get("next_page_token"),
		Locale:        locale(r),
	}
	if opts.Query == "" {
		opts.Query = query.Get("destination")
	}

	ints := map[string]*int{
		"adults":    &opts.Adults,
		"rooms":     &opts.Rooms,
		"min_price": &opts.MinPrice,
		"max_price": &opts.MaxPrice,
		"bedrooms":  &opts.Bedrooms,
		"bathrooms": &opts.Bathrooms,
	}
	for name, target := range ints {
		v, err := httputil.QueryInt(r, name)
		if err != nil {
			return opts, err
		}
		*target = v
	}

	bools := map[string]*bool{
		"free_cancellation": &opts.FreeCancellation,
		"special_offers":    &opts.SpecialOffers,
		"eco_certified":     &opts.EcoCertified,
		"vacation_rentals":  &opts.VacationRentals,
	}
	for name, target := range bools {
		v, err := httputil.QueryBool(r, name)
		if err != nil {
			return opts, err
		}
		*target = v
	}

	return opts, nil
}

func locale(r *http.Request) gateway.Locale {
	query := r.URL.Query()
	return gateway.Locale{
		Currency: query.Get("currency"),
		Country:  query.Get("gl"),
		Language: query.Get("hl"),
	}
}
