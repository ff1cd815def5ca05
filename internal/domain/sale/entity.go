package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems          = errors.New("a venda deve ter ao menos um item")
	ErrInvalidQuantity  = errors.New("quantidade vendida deve ser maior que zero")
	ErrInvalidStatus    = errors.New("status de venda inválido")
	ErrInvalidPayment   = errors.New("forma de pagamento inválida")
	ErrNegativeDiscount = errors.New("desconto não pode ser negativo")
)

// PaymentMethod representa a forma de pagamento da venda
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "dinheiro"
	PaymentPix          PaymentMethod = "pix"
	PaymentDebitCard    PaymentMethod = "cartao_debito"
	PaymentCreditCard   PaymentMethod = "cartao_credito"
	PaymentTransference PaymentMethod = "transferencia"
	PaymentCheck        PaymentMethod = "cheque"
)

// IsCard indica se a forma de pagamento é cartão (sujeita à taxa da operadora)
func (p PaymentMethod) IsCard() bool {
	return p == PaymentCreditCard || p == PaymentDebitCard
}

// Status representa o estado da venda
type Status string

const (
	StatusPending   Status = "pendente"
	StatusPaid      Status = "pago"
	StatusCancelled Status = "cancelado"
)

// DiscountType define como o desconto da venda é expresso
type DiscountType string

const (
	DiscountPercent DiscountType = "percentual"
	DiscountFixed   DiscountType = "valor_fixo"
)

// Item representa um item vendido, referenciando uma peça e variação do catálogo
type Item struct {
	ID               string  `json:"id"`
	ClothingItemID   string  `json:"clothing_item_id"`
	ClothingItemCode string  `json:"clothing_item_code"`
	ClothingItemName string  `json:"clothing_item_name"`
	VariationID      string  `json:"variation_id"`
	Size             string  `json:"size"`
	Color            string  `json:"color"`
	Quantity         int     `json:"quantity"`
	UnitPrice        float64 `json:"unit_price"`
	TotalPrice       float64 `json:"total_price"`
}

// Sale representa uma venda registrada. O histórico de vendas é somente
// crescente: itens vendidos nunca são editados, apenas a venda inteira é
// cancelada ou removida (com reposição do estoque).
type Sale struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customer_name,omitempty"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	CustomerEmail string        `json:"customer_email,omitempty"`
	Items         []Item        `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Discount      float64       `json:"discount"`
	DiscountType  DiscountType  `json:"discount_type"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        Status        `json:"status"`
	Notes         string        `json:"notes,omitempty"`
	SellerID      string        `json:"seller_id,omitempty"`
	SellerName    string        `json:"seller_name,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// NewSale cria uma nova venda calculando subtotal e total a partir dos itens
func NewSale(customerName string, items []Item, discount float64, discountType DiscountType, payment PaymentMethod, status Status) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if discount < 0 {
		return nil, ErrNegativeDiscount
	}
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}
	if !validPayment(payment) {
		return nil, ErrInvalidPayment
	}

	subtotal := 0.0
	for i := range items {
		if items[i].Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
		if items[i].TotalPrice == 0 {
			items[i].TotalPrice = items[i].UnitPrice * float64(items[i].Quantity)
		}
		subtotal += items[i].TotalPrice
	}

	total := subtotal
	switch discountType {
	case DiscountPercent:
		total = subtotal - subtotal*(discount/100)
	case DiscountFixed:
		total = subtotal - discount
	}
	if total < 0 {
		total = 0
	}

	now := time.Now()
	return &Sale{
		ID:            uuid.New().String(),
		CustomerName:  customerName,
		Items:         items,
		Subtotal:      subtotal,
		Discount:      discount,
		DiscountType:  discountType,
		Total:         total,
		PaymentMethod: payment,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Cancel marca a venda como cancelada
func (s *Sale) Cancel() {
	s.Status = StatusCancelled
	s.UpdatedAt = time.Now()
}

// MarkPaid marca a venda como paga
func (s *Sale) MarkPaid() {
	s.Status = StatusPaid
	s.UpdatedAt = time.Now()
}

// QuantityOf retorna a quantidade vendida nesta venda para a peça informada.
// Com variationID vazio, soma todos os itens da peça.
func (s *Sale) QuantityOf(clothingItemID, variationID string) int {
	total := 0
	for _, it := range s.Items {
		if it.ClothingItemID != clothingItemID {
			continue
		}
		if variationID != "" && it.VariationID != variationID {
			continue
		}
		total += it.Quantity
	}
	return total
}

func validStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

func validPayment(p PaymentMethod) bool {
	switch p {
	case PaymentCash, PaymentPix, PaymentDebitCard, PaymentCreditCard, PaymentTransference, PaymentCheck:
		return true
	}
	return false
}
