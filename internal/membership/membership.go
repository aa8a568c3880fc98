// Package membership resolves which benefit a member receives through double
// dispatch: the member calls back into the benefit with itself, so the
// benefit's method is chosen by the member's kind without any type switch.
package membership

import (
	"github.com/olehluchkiv/tripkit/internal/observe"
)

// Member is a club member who can claim a benefit.
type Member interface {
	Name() string
	GetBenefit(b Benefit)
}

// Benefit has one entry point per member kind.
type Benefit interface {
	VipBenefit(m VipMember)
	GoldBenefit(m GoldMember)
}

var (
	_ Member  = VipMember{}
	_ Member  = GoldMember{}
	_ Benefit = (*DiscountBenefit)(nil)
	_ Benefit = (*PointerBenefit)(nil)
)

type VipMember struct {
	name string
}

func NewVipMember(name string) VipMember { return VipMember{name: name} }

func (m VipMember) Name() string { return m.name }
func (m VipMember) String() string { return "Vip " + m.name }
func (m VipMember) GetBenefit(b Benefit) { b.VipBenefit(m) }

type GoldMember struct {
	name string
}

func NewGoldMember(name string) GoldMember { return GoldMember{name: name} }

func (m GoldMember) Name() string { return m.name }
func (m GoldMember) String() string { return "Gold " + m.name }
func (m GoldMember) GetBenefit(b Benefit) { b.GoldBenefit(m) }

// DiscountBenefit grants a discount.
type DiscountBenefit struct {
	sink observe.Sink
}

func NewDiscountBenefit(sink observe.Sink) *DiscountBenefit {
	return &DiscountBenefit{sink: sink}
}

func (b *DiscountBenefit) String() string { return "discount" }

func (b *DiscountBenefit) VipBenefit(m VipMember) {
	observe.Emit(b.sink, b.String(), m, "get vip discount")
}

func (b *DiscountBenefit) GoldBenefit(m GoldMember) {
	observe.Emit(b.sink, b.String(), m, "get gold discount")
}

// PointerBenefit grants loyalty points.
type PointerBenefit struct {
	sink observe.Sink
}

func NewPointerBenefit(sink observe.Sink) *PointerBenefit {
	return &PointerBenefit{sink: sink}
}

func (b *PointerBenefit) String() string { return "pointer" }

func (b *PointerBenefit) VipBenefit(m VipMember) {
	observe.Emit(b.sink, b.String(), m, "get vip pointer")
}

func (b *PointerBenefit) GoldBenefit(m GoldMember) {
	observe.Emit(b.sink, b.String(), m, "get gold pointer")
}
