package domain

// ServiceType вид услуги
type ServiceType string

const (
	ServiceMoving     ServiceType = "moving"      // переезд: бригада + грузовик
	ServiceLaborOnly  ServiceType = "labor_only"  // только грузчики, без транспорта
	ServiceSingleItem ServiceType = "single_item" // перевозка одного предмета
)

// IsValid проверяет, что значение является известным видом услуги
func (s ServiceType) IsValid() bool {
	return s == ServiceMoving || s == ServiceLaborOnly || s == ServiceSingleItem
}

// HomeType тип здания на стороне погрузки или выгрузки
type HomeType string

const (
	HomeApartment HomeType = "apartment"
	HomeHouse     HomeType = "house"
)

// BuildingInfo информация о здании: тип и количество лестничных пролетов
type BuildingInfo struct {
	HomeType     HomeType
	StairFlights int
}

// QuoteRequest запрос на расчет стоимости
// Не персистится: живет только в рамках одного запроса
type QuoteRequest struct {
	ServiceType ServiceType

	// Размер бригады, имеет смысл только для moving и labor_only
	CrewSize int

	DistanceMiles    float64
	DriveTimeMinutes float64

	// Для labor_only клиент задает часы работы напрямую
	LaborHours float64

	Pickup  BuildingInfo
	Dropoff BuildingInfo

	// Спецпредметы из инвентаря: piano, pool_table, hot_tub, safe, ...
	SpecialtyItems []string

	PackingService   bool
	MovingBlankets   int            // количество одеял
	PackingMaterials map[string]int // вид материала -> количество

	InsuranceRequested bool
	DeclaredValue      float64
}
