package entities

const (
	ChecklistImportacaoProdutos  = "importacaoProdutos"
	ChecklistAdicionaisOpcionais = "adicionaisOpcionais"
	ChecklistCodigoPDV           = "codigoPDV"
	ChecklistPreco               = "preco"
	ChecklistBairros             = "bairros"
	ChecklistImagens             = "imagens"
	ChecklistFiscal              = "fiscal"
)

// ChecklistKeys lists the completion items in display order.
var ChecklistKeys = []string{
	ChecklistImportacaoProdutos,
	ChecklistAdicionaisOpcionais,
	ChecklistCodigoPDV,
	ChecklistPreco,
	ChecklistBairros,
	ChecklistImagens,
	ChecklistFiscal,
}

// Checklist is the fixed set of completion items of an order.
type Checklist struct {
	ImportacaoProdutos  bool `json:"importacaoProdutos"`
	AdicionaisOpcionais bool `json:"adicionaisOpcionais"`
	CodigoPDV           bool `json:"codigoPDV"`
	Preco               bool `json:"preco"`
	Bairros             bool `json:"bairros"`
	Imagens             bool `json:"imagens"`
	Fiscal              bool `json:"fiscal"`
}

func (c *Checklist) field(key string) *bool {
	switch key {
	case ChecklistImportacaoProdutos:
		return &c.ImportacaoProdutos
	case ChecklistAdicionaisOpcionais:
		return &c.AdicionaisOpcionais
	case ChecklistCodigoPDV:
		return &c.CodigoPDV
	case ChecklistPreco:
		return &c.Preco
	case ChecklistBairros:
		return &c.Bairros
	case ChecklistImagens:
		return &c.Imagens
	case ChecklistFiscal:
		return &c.Fiscal
	}
	return nil
}

// IsChecklistKey reports whether key names one of the checklist items.
func IsChecklistKey(key string) bool {
	var c Checklist
	return c.field(key) != nil
}

// Set updates one item. It returns false for unknown keys.
func (c *Checklist) Set(key string, value bool) bool {
	f := c.field(key)
	if f == nil {
		return false
	}
	*f = value
	return true
}

func (c Checklist) Get(key string) (bool, bool) {
	f := c.field(key)
	if f == nil {
		return false, false
	}
	return *f, true
}

func (c Checklist) Map() map[string]bool {
	out := make(map[string]bool, len(ChecklistKeys))
	for _, k := range ChecklistKeys {
		v, _ := c.Get(k)
		out[k] = v
	}
	return out
}

// ChecklistFromMap builds a checklist ignoring unknown keys.
func ChecklistFromMap(m map[string]bool) Checklist {
	var c Checklist
	for k, v := range m {
		c.Set(k, v)
	}
	return c
}
