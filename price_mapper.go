package tickbook

import "github.com/shopspring/decimal"

// PriceMapper converts between real prices and the dense tick indices the
// matching core operates on internally. It is the only component in the
// engine that touches decimal arithmetic; everything past this boundary
// is plain integer tick math.
type PriceMapper struct {
	floor  decimal.Decimal
	tick   decimal.Decimal
	levels int
}

// NewPriceMapper builds a mapper for levels ticks starting at floor, each
// tick wide apart by tick. tick must be strictly positive.
func NewPriceMapper(floor, tick decimal.Decimal, levels int) *PriceMapper {
	return &PriceMapper{floor: floor, tick: tick, levels: levels}
}

// Levels returns the number of tick indices the mapper covers, [0, Levels).
func (m *PriceMapper) Levels() int { return m.levels }

// ToIndex maps a real price to its tick index, rounding to the nearest
// tick. Returns ErrInvalidPriceIndex if the price falls outside the
// mapper's configured [floor, floor+(levels-1)*tick] range.
func (m *PriceMapper) ToIndex(price decimal.Decimal) (int, error) {
	offset := price.Sub(m.floor)
	ticks := offset.DivRound(m.tick, 0)
	idx := int(ticks.IntPart())
	if idx < 0 || idx >= m.levels {
		return 0, ErrInvalidPriceIndex
	}
	return idx, nil
}

// ToPrice maps a tick index back to its real price.
func (m *PriceMapper) ToPrice(idx int) decimal.Decimal {
	return m.floor.Add(m.tick.Mul(decimal.NewFromInt(int64(idx))))
}

// InRange reports whether idx is a valid tick index for this mapper.
func (m *PriceMapper) InRange(idx int) bool {
	return idx >= 0 && idx < m.levels
}
