package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warung-pos/internal/cart"
	"warung-pos/internal/domain"
	salerepo "warung-pos/internal/repository/sale"
	salesvc "warung-pos/internal/service/sale"
)

type checkoutTopping struct {
	ID         string `json:"id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"priceCents"`
}

type checkoutLine struct {
	Kind           string            `json:"kind" binding:"required"` // product | topping
	ID             string            `json:"id" binding:"required"`
	Name           string            `json:"name" binding:"required"`
	UnitPriceCents int64             `json:"unitPriceCents"`
	Quantity       int               `json:"quantity" binding:"required,gt=0"`
	Toppings       []checkoutTopping `json:"toppings"`
	Note           string            `json:"note"`
}

type checkoutRequest struct {
	Items           []checkoutLine       `json:"items" binding:"required"`
	PaymentMethod   domain.PaymentMethod `json:"paymentMethod" binding:"required"`
	TotalCents      int64                `json:"totalCents"`
	CashAmountCents *int64               `json:"cashAmountCents"`
}

func (req checkoutRequest) toCart() (cart.Cart, error) {
	lines := make(cart.Cart, 0, len(req.Items))
	for _, item := range req.Items {
		base := cart.BaseItem{ID: item.ID, Name: item.Name, PriceCents: item.UnitPriceCents}
		switch item.Kind {
		case string(cart.BaseProduct):
			base.Kind = cart.BaseProduct
		case string(cart.BaseTopping):
			base.Kind = cart.BaseTopping
			if len(item.Toppings) > 0 {
				return nil, errors.New("a standalone topping line cannot carry add-ons")
			}
		default:
			return nil, errors.New("item kind must be product or topping")
		}
		line := cart.Line{
			ID:       uuid.NewString(),
			Base:     base,
			Quantity: item.Quantity,
			Note:     item.Note,
		}
		for _, t := range item.Toppings {
			line.AddOns = append(line.AddOns, cart.AddOn{
				ToppingID:  t.ID,
				Name:       t.Name,
				PriceCents: t.PriceCents,
			})
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// checkoutHandler commits one sale. Failures keep the payment dialog open on
// the client; the response body for a store-level failure states that
// inventory was not changed so the cashier can safely retry.
func checkoutHandler(svc saleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid payload")
			return
		}
		lines, err := req.toCart()
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		sess := currentSession(c)
		cashier := salesvc.Cashier{ID: sess.UserID, Name: sess.Name}

		committed, err := svc.Commit(c.Request.Context(), cashier, lines, req.PaymentMethod, req.TotalCents, req.CashAmountCents)
		if err != nil {
			writeCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"sale":           committed,
			"changeDueCents": committed.ChangeDueCents(),
		})
	}
}

func writeCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, salesvc.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
	case errors.Is(err, salesvc.ErrEmptyCart),
		errors.Is(err, salesvc.ErrInvalidPayment),
		errors.Is(err, salesvc.ErrTotalMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, salesvc.ErrInsufficientPayment):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cash tendered is below the total"})
	case errors.Is(err, salesvc.ErrCommitFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":              "sale could not be recorded; inventory was not changed, please retry",
			"inventoryUnchanged": true,
		})
	default:
		writeError(c, err)
	}
}

// parseSaleFilter reads from/to (RFC 3339 or YYYY-MM-DD) query params.
// Employees are always scoped to their own sales; admins may pass cashierId.
func parseSaleFilter(c *gin.Context) (salerepo.ListFilter, error) {
	var f salerepo.ListFilter
	var err error
	if f.From, err = parseTimeParam(c.Query("from")); err != nil {
		return f, errors.New("invalid from")
	}
	if f.To, err = parseTimeParam(c.Query("to")); err != nil {
		return f, errors.New("invalid to")
	}

	sess := currentSession(c)
	if sess.Role == domain.RoleAdmin {
		f.CashierID = c.Query("cashierId")
	} else {
		f.CashierID = sess.UserID
	}
	return f, nil
}

func parseTimeParam(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}

func listSalesHandler(svc saleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := parseSaleFilter(c)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		sales, err := svc.List(c.Request.Context(), f)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sales": sales})
	}
}

func getSaleHandler(svc saleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sale, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		sess := currentSession(c)
		if sess.Role != domain.RoleAdmin && sale.CashierID != sess.UserID {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, sale)
	}
}

func deleteSaleHandler(svc saleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
