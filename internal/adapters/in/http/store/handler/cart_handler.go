package storeHandler

import (
	"log"
	"net/http"
	"strings"
	"time"

	"greenhaven/internal/adapters/in/http/middleware"
	usecase "greenhaven/internal/application/usecase"
)

// CartHandler serves the cart surface. The owner id is the authenticated uid
// when a valid token accompanies the request, otherwise the guest cart id
// from the X-Guest-Cart header.
//
//	GET    /store/cart                      current cart (creates on first access)
//	DELETE /store/cart                      clear items (keeps the document)
//	POST   /store/cart/items                add {productId, quantity}
//	PUT    /store/cart/items                set  {productId, quantity}; qty<1 removes
//	DELETE /store/cart/items/{productId}    remove one line
//	POST   /store/cart/merge                fold guest cart into the signed-in cart
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimRight(r.URL.Path, "/")

	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	isGET := r.Method == http.MethodGet
	isPOST := r.Method == http.MethodPost
	isPUT := r.Method == http.MethodPut
	isDEL := r.Method == http.MethodDelete

	switch {
	case isPOST && strings.HasSuffix(path, "/cart/merge"):
		h.handleMerge(w, r, start)
	case isPOST && strings.HasSuffix(path, "/cart/items"):
		h.handleAddItem(w, r, start)
	case isPUT && strings.HasSuffix(path, "/cart/items"):
		h.handleSetQty(w, r, start)
	case isDEL && strings.Contains(path, "/cart/items/"):
		h.handleRemoveItem(w, r, start)
	case isGET && strings.HasSuffix(path, "/cart"):
		h.handleGet(w, r, start)
	case isDEL && strings.HasSuffix(path, "/cart"):
		h.handleClear(w, r, start)
	default:
		methodNotAllowed(w)
	}
}

func (h *CartHandler) handleGet(w http.ResponseWriter, r *http.Request, start time.Time) {
	ownerID := readOwnerID(r)
	if ownerID == "" {
		writeErr(w, http.StatusBadRequest, "missing cart owner (sign in or send X-Guest-Cart)")
		return
	}

	c, err := h.uc.GetOrCreate(r.Context(), ownerID)
	if err != nil {
		log.Printf("[store_cart_handler] get failed owner=%q err=%v", ownerID, err)
		writeDomainErr(w, err)
		return
	}

	log.Printf("[store_cart_handler] get ok owner=%q items=%d subtotal=%d elapsed=%s",
		ownerID, len(c.Items), c.SubtotalCents, time.Since(start))
	writeJSON(w, http.StatusOK, c)
}

type cartItemBody struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) handleAddItem(w http.ResponseWriter, r *http.Request, start time.Time) {
	ownerID := readOwnerID(r)
	if ownerID == "" {
		writeErr(w, http.StatusBadRequest, "missing cart owner (sign in or send X-Guest-Cart)")
		return
	}

	var body cartItemBody
	if err := decodeBody(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c, err := h.uc.AddItem(r.Context(), ownerID, body.ProductID, body.Quantity)
	if err != nil {
		log.Printf("[store_cart_handler] add failed owner=%q productId=%q qty=%d err=%v",
			ownerID, body.ProductID, body.Quantity, err)
		writeDomainErr(w, err)
		return
	}

	log.Printf("[store_cart_handler] add ok owner=%q productId=%q items=%d elapsed=%s",
		ownerID, body.ProductID, len(c.Items), time.Since(start))
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) handleSetQty(w http.ResponseWriter, r *http.Request, start time.Time) {
	ownerID := readOwnerID(r)
	if ownerID == "" {
		writeErr(w, http.StatusBadRequest, "missing cart owner (sign in or send X-Guest-Cart)")
		return
	}

	var body cartItemBody
	if err := decodeBody(r, &body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c, err := h.uc.SetItemQty(r.Context(), ownerID, body.ProductID, body.Quantity)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	log.Printf("[store_cart_handler] setQty ok owner=%q productId=%q qty=%d elapsed=%s",
		ownerID, body.ProductID, body.Quantity, time.Since(start))
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request, start time.Time) {
	ownerID := readOwnerID(r)
	if ownerID == "" {
		writeErr(w, http.StatusBadRequest, "missing cart owner (sign in or send X-Guest-Cart)")
		return
	}

	productID := pathTail(r.URL.Path, "/store/cart/items")
	if productID == "" {
		writeErr(w, http.StatusBadRequest, "missing product id")
		return
	}

	c, err := h.uc.RemoveItem(r.Context(), ownerID, productID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	log.Printf("[store_cart_handler] remove ok owner=%q productId=%q elapsed=%s",
		ownerID, productID, time.Since(start))
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) handleClear(w http.ResponseWriter, r *http.Request, start time.Time) {
	ownerID := readOwnerID(r)
	if ownerID == "" {
		writeErr(w, http.StatusBadRequest, "missing cart owner (sign in or send X-Guest-Cart)")
		return
	}

	c, err := h.uc.Clear(r.Context(), ownerID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	log.Printf("[store_cart_handler] clear ok owner=%q elapsed=%s", ownerID, time.Since(start))
	writeJSON(w, http.StatusOK, c)
}

// handleMerge requires a signed-in user; the guest id comes from the body or
// the X-Guest-Cart header.
func (h *CartHandler) handleMerge(w http.ResponseWriter, r *http.Request, start time.Time) {
	uid, ok := middleware.CurrentUserUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "merge requires a signed-in user")
		return
	}

	var body struct {
		GuestCartID string `json:"guestCartId"`
	}
	if err := decodeBody(r, &body); err != nil && r.ContentLength > 0 {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	guestID := strings.TrimSpace(body.GuestCartID)
	if guestID == "" {
		guestID = strings.TrimSpace(r.Header.Get("X-Guest-Cart"))
	}
	if guestID == "" {
		writeErr(w, http.StatusBadRequest, "missing guestCartId")
		return
	}

	c, err := h.uc.MergeGuestCart(r.Context(), guestID, uid)
	if err != nil {
		log.Printf("[store_cart_handler] merge failed guest=%q uid=%q err=%v", guestID, uid, err)
		writeDomainErr(w, err)
		return
	}

	log.Printf("[store_cart_handler] merge ok guest=%q uid=%q items=%d elapsed=%s",
		guestID, uid, len(c.Items), time.Since(start))
	writeJSON(w, http.StatusOK, c)
}
