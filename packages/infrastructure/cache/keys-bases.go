package cache

const (
	EmployeeKeyPrefix = "employee:"
	OrderKeyPrefix    = "order:"
	ProductKeyPrefix  = "product:"
)

var EmployeeById = EmployeeKeyPrefix + "id:"
var OrderById = OrderKeyPrefix + "id:"
var ProductById = ProductKeyPrefix + "id:"

// Key prefix of each cached entity by entity name
var EntityKeyPrefix = map[string]string{
	"employee": EmployeeKeyPrefix,
	"order":    OrderKeyPrefix,
	"product":  ProductKeyPrefix,
}
