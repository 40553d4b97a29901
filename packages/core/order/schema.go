package order

import (
	"time"
	"warehouse/packages/core/filter"
	"warehouse/packages/core/query"
)

var Schema = &query.Schema[*Detailed]{
	Entity: "order",
	FilterKeys: []string{
		string(StatusProperty),
		string(NumberProperty),
		string(TimestampProperty),
	},
	Fields: map[string]query.Field[*Detailed]{
		string(IdProperty):        func(o *Detailed) any { return o.ID.Hex() },
		string(NumberProperty):    func(o *Detailed) any { return float64(o.Number) },
		string(ProductsProperty):  func(o *Detailed) any { return o.Products },
		string(PickerProperty):    func(o *Detailed) any { return o.Picker.Hex() },
		string(DriverProperty):    func(o *Detailed) any { return o.Driver },
		string(StatusProperty):    func(o *Detailed) any { return string(o.Status) },
		string(TimestampProperty): func(o *Detailed) any { return o.Time },
	},
	SortKeys: map[filter.SortKey]func(*Detailed) float64{
		filter.TimestampSortKey:   func(o *Detailed) float64 { return float64(o.Time.UnixMilli()) },
		filter.OrderNumberSortKey: func(o *Detailed) float64 { return float64(o.Number) },
		filter.PriceSortKey:       (*Detailed).MinPrice,
		filter.TotalSortKey:       (*Detailed).Total,
	},
}

func init() {
	Schema.Instants = func(o *Detailed, key string) []time.Time {
		if key == "" {
			key = string(TimestampProperty)
		}
		return query.FieldInstant(Schema, o, key)
	}
}
