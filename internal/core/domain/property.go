package domain

// PropertyType - категория объекта недвижимости.
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeCommercial PropertyType = "commercial"
	PropertyTypeLand       PropertyType = "land"
)

// PropertyTypes - все известные категории в порядке отображения в UI.
var PropertyTypes = []PropertyType{
	PropertyTypeApartment,
	PropertyTypeHouse,
	PropertyTypeCommercial,
	PropertyTypeLand,
}

// IsValid проверяет, что категория входит в известный словарь.
func (t PropertyType) IsValid() bool {
	for _, v := range PropertyTypes {
		if t == v {
			return true
		}
	}
	return false
}

// OperationType - тип сделки.
type OperationType string

const (
	OperationTypeSale OperationType = "sale"
	OperationTypeRent OperationType = "rent"
)

var OperationTypes = []OperationType{OperationTypeSale, OperationTypeRent}

func (o OperationType) IsValid() bool {
	for _, v := range OperationTypes {
		if o == v {
			return true
		}
	}
	return false
}

// PropertyRecord - одна карточка каталога в том виде, в каком ее видит движок фильтрации.
// Записи приходят из источника (БД или файл каталога) и не изменяются во время фильтрации.
type PropertyRecord struct {
	ID            string
	PropertyType  PropertyType
	OperationType OperationType
	Price         float64
	RoomCount     int
	LocationText  string
	AreaSqMeters  float64

	// Поля ниже нужны только слою отображения, движок их не читает.
	Title     string
	ImageURL  string
	Latitude  *float64
	Longitude *float64
}

// HasCoordinates сообщает, известны ли координаты объекта.
func (r PropertyRecord) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}
