package storeHandler

import (
	"log"
	"net/http"

	usecase "greenhaven/internal/application/usecase"
)

// InquiryHandler accepts contact-form submissions:
//
//	POST /store/inquiries {name, email, subject, body}
type InquiryHandler struct {
	uc *usecase.InquiryUsecase
}

func NewInquiryHandler(uc *usecase.InquiryUsecase) http.Handler {
	return &InquiryHandler{uc: uc}
}

func (h *InquiryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "inquiry handler is not configured")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	inq, err := h.uc.Submit(r.Context(), body.Name, body.Email, body.Subject, body.Body)
	if err != nil {
		log.Printf("[store_inquiry_handler] submit failed email=%q err=%v", body.Email, err)
		writeDomainErr(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, inq)
}
