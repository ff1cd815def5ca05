package repository

import (
	"github.com/jeacloset/erp-vestuario/internal/domain/cashflow"
	"github.com/jeacloset/erp-vestuario/internal/domain/clothing"
	"github.com/jeacloset/erp-vestuario/internal/domain/note"
	"github.com/jeacloset/erp-vestuario/internal/domain/sale"
	"github.com/jeacloset/erp-vestuario/internal/domain/user"
)

// Garante em tempo de compilação que cada repositório implementa por
// completo a interface do seu domínio.
var (
	_ user.Repository     = (*UserRepository)(nil)
	_ clothing.Repository = (*ClothingRepository)(nil)
	_ sale.Repository     = (*SaleRepository)(nil)
	_ cashflow.Repository = (*CashflowRepository)(nil)
	_ note.Repository     = (*NoteRepository)(nil)
)
