// Package decoder maps a row's entity name to the model constructor that
// decodes it.
package decoder

import (
	"github.com/carson-networks/moneywiz-decoder/internal/decodeerr"
	"github.com/carson-networks/moneywiz-decoder/internal/model"
	"github.com/carson-networks/moneywiz-decoder/internal/rowdata"
)

// Decoder turns rows into records. It holds no mutable state and is safe for
// concurrent use.
type Decoder struct {
	tolerances model.Tolerances
}

func New(tolerances model.Tolerances) *Decoder {
	return &Decoder{tolerances: tolerances}
}

// Tolerances returns the tolerances the decoder validates with.
func (d *Decoder) Tolerances() model.Tolerances {
	return d.tolerances
}

// DecodeTransaction decodes row as the transaction variant named by kind.
// Errors are annotated with the kind and the row's Z_PK.
func (d *Decoder) DecodeTransaction(kind model.Kind, row rowdata.Row) (model.Transaction, error) {
	tx, err := d.decodeTransaction(kind, row)
	if err != nil {
		return nil, annotate(err, string(kind), row)
	}
	return tx, nil
}

func (d *Decoder) decodeTransaction(kind model.Kind, row rowdata.Row) (model.Transaction, error) {
	tol := d.tolerances

	switch kind {
	case model.KindDeposit:
		return asTransaction(model.NewDeposit(row, tol))
	case model.KindWithdraw:
		return asTransaction(model.NewWithdraw(row, tol))
	case model.KindRefund:
		return asTransaction(model.NewRefund(row, tol))
	case model.KindInvestmentBuy:
		return asTransaction(model.NewInvestmentBuy(row, tol))
	case model.KindInvestmentSell:
		return asTransaction(model.NewInvestmentSell(row, tol))
	case model.KindInvestmentExchange:
		return asTransaction(model.NewInvestmentExchange(row, tol))
	case model.KindReconcile:
		return asTransaction(model.NewReconcile(row, tol))
	case model.KindTransferDeposit:
		return asTransaction(model.NewTransferDeposit(row, tol))
	case model.KindTransferWithdraw:
		return asTransaction(model.NewTransferWithdraw(row, tol))
	case model.KindTransferBudget:
		return nil, model.RejectTransferBudget(row)
	default:
		return nil, decodeerr.UnknownVariant(string(kind))
	}
}

func asTransaction[T model.Transaction](tx T, err error) (model.Transaction, error) {
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// DecodeHolding decodes an InvestmentHolding row.
func (d *Decoder) DecodeHolding(row rowdata.Row) (model.InvestmentHolding, error) {
	h, err := model.NewInvestmentHolding(row)
	if err != nil {
		return model.InvestmentHolding{}, annotate(err, model.EntityInvestmentHolding, row)
	}
	return h, nil
}

// DecodeGroup decodes a Group row.
func (d *Decoder) DecodeGroup(row rowdata.Row) (model.Group, error) {
	g, err := model.NewGroup(row)
	if err != nil {
		return model.Group{}, annotate(err, model.EntityGroup, row)
	}
	return g, nil
}

// Decode decodes row as any supported entity.
func (d *Decoder) Decode(entityName string, row rowdata.Row) (model.Entity, error) {
	switch entityName {
	case model.EntityInvestmentHolding:
		h, err := d.DecodeHolding(row)
		if err != nil {
			return nil, err
		}
		return h, nil
	case model.EntityGroup:
		g, err := d.DecodeGroup(row)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return d.DecodeTransaction(model.Kind(entityName), row)
}

// Supports reports whether entityName has a constructor, including the
// recognised but unimplemented budget transfer.
func Supports(entityName string) bool {
	switch entityName {
	case model.EntityInvestmentHolding, model.EntityGroup:
		return true
	}
	for _, k := range model.TransactionKinds() {
		if string(k) == entityName {
			return true
		}
	}
	return false
}

// annotate attaches the entity name and, when readable, the row's Z_PK.
func annotate(err error, entity string, row rowdata.Row) error {
	id, idErr := row.ID(rowdata.ColumnPK)
	if idErr != nil {
		id = 0
	}
	return decodeerr.Annotate(err, entity, int64(id))
}
