package clothing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("nome da peça não pode ser vazio")
	ErrEmptyCode        = errors.New("código da peça não pode ser vazio")
	ErrEmptySupplier    = errors.New("fornecedor não pode ser vazio")
	ErrNoVariations     = errors.New("a peça deve ter ao menos uma variação")
	ErrNegativePrice    = errors.New("preço não pode ser negativo")
	ErrNegativeQuantity = errors.New("quantidade não pode ser negativa")
)

// Category representa a categoria da peça de vestuário
type Category string

const (
	CategoryBlusas    Category = "Blusas"
	CategoryCamisetas Category = "Camisetas"
	CategoryVestidos  Category = "Vestidos"
	CategoryCalcas    Category = "Calças"
	CategoryShorts    Category = "Shorts"
	CategorySaias     Category = "Saias"
	CategoryJaquetas  Category = "Jaquetas"
	CategoryBlazers   Category = "Blazers"
	CategoryCasacos   Category = "Casacos"
	CategoryIntimas   Category = "Roupas Íntimas"
	CategoryAcessorio Category = "Acessórios"
	CategoryCalcados  Category = "Calçados"
	CategoryBolsas    Category = "Bolsas"
	CategoryCintos    Category = "Cintos"
	CategoryJoias     Category = "Joias"
	CategoryOutros    Category = "Outros"
)

// Status representa o estado da peça no estoque
type Status string

const (
	StatusAvailable Status = "available"
	StatusSold      Status = "sold"
	StatusReserved  Status = "reserved"
)

// SizeType define como o tamanho de uma variação é expresso
type SizeType string

const (
	SizeTypeNumeric SizeType = "numeric"
	SizeTypeLetter  SizeType = "letter"
	SizeTypeCustom  SizeType = "custom"
)

// Size representa o tamanho de uma variação (numérico, letra ou customizado)
type Size struct {
	Type        SizeType `json:"type"`
	Value       string   `json:"value"`
	DisplayName string   `json:"display_name"`
}

// Variation representa uma variação (tamanho/cor) de uma peça.
//
// Quantity é a quantidade disponível em estoque, já líquida de vendas.
// SoldQuantity só é preenchido em conjuntos de demonstração (perfil
// visualizador); em dados reais o vendido é sempre derivado do histórico
// de vendas e o campo permanece zero.
type Variation struct {
	ID           string `json:"id"`
	Size         Size   `json:"size"`
	Color        string `json:"color"`
	ColorCode    string `json:"color_code,omitempty"`
	Quantity     int    `json:"quantity"`
	SoldQuantity int    `json:"sold_quantity,omitempty"`
	SKU          string `json:"sku,omitempty"`
}

// Item representa uma peça de vestuário do catálogo
type Item struct {
	ID              string      `json:"id"`
	Code            string      `json:"code"`
	Name            string      `json:"name"`
	Description     string      `json:"description,omitempty"`
	Category        Category    `json:"category"`
	Brand           string      `json:"brand,omitempty"`
	Supplier        string      `json:"supplier"`
	Collection      string      `json:"collection,omitempty"`
	Season          string      `json:"season,omitempty"`
	Variations      []Variation `json:"variations"`
	CostPrice       float64     `json:"cost_price"`
	SellingPrice    float64     `json:"selling_price"`
	FreightCost     float64     `json:"freight_cost"`     // frete total do lote de compra
	FreightQuantity int         `json:"freight_quantity"` // peças no lote de compra
	PackagingCost   float64     `json:"packaging_cost"`
	ExtraCosts      float64     `json:"extra_costs"`
	CreditFee       float64     `json:"credit_fee"` // percentual da taxa de cartão
	Status          Status      `json:"status"`
	Tags            []string    `json:"tags,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// NewItem cria uma nova peça de vestuário
func NewItem(code, name string, category Category, supplier string, costPrice, sellingPrice float64, variations []Variation) (*Item, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if code == "" {
		return nil, ErrEmptyCode
	}
	if supplier == "" {
		return nil, ErrEmptySupplier
	}
	if len(variations) == 0 {
		return nil, ErrNoVariations
	}
	if costPrice < 0 || sellingPrice < 0 {
		return nil, ErrNegativePrice
	}
	for _, v := range variations {
		if v.Quantity < 0 {
			return nil, ErrNegativeQuantity
		}
	}

	now := time.Now()
	item := &Item{
		ID:           uuid.New().String(),
		Code:         code,
		Name:         name,
		Category:     category,
		Supplier:     supplier,
		Variations:   variations,
		CostPrice:    costPrice,
		SellingPrice: sellingPrice,
		Status:       StatusAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Garantir que toda variação tenha um ID próprio
	for i := range item.Variations {
		if item.Variations[i].ID == "" {
			item.Variations[i].ID = uuid.New().String()
		}
	}

	return item, nil
}

// Variation retorna a variação com o ID informado, ou nil se não existir
func (i *Item) Variation(variationID string) *Variation {
	for idx := range i.Variations {
		if i.Variations[idx].ID == variationID {
			return &i.Variations[idx]
		}
	}
	return nil
}

// AvailableQuantity retorna a quantidade disponível somada de todas as variações
func (i *Item) AvailableQuantity() int {
	total := 0
	for _, v := range i.Variations {
		total += v.Quantity
	}
	return total
}

// AdjustVariationQuantity soma delta à quantidade da variação indicada.
// A quantidade resultante nunca fica negativa.
func (i *Item) AdjustVariationQuantity(variationID string, delta int) error {
	v := i.Variation(variationID)
	if v == nil {
		return errors.New("variação não encontrada")
	}
	v.Quantity += delta
	if v.Quantity < 0 {
		v.Quantity = 0
	}
	i.UpdatedAt = time.Now()
	return nil
}

// Touch atualiza o carimbo de atualização da peça
func (i *Item) Touch() {
	i.UpdatedAt = time.Now()
}
