package domain

import "time"

// ServiceType represents a booking form variant
type ServiceType string

const (
	ServiceHomeClean   ServiceType = "home_clean"
	ServiceOfficeClean ServiceType = "office_clean"
	ServiceFreeRoom    ServiceType = "free_room" // промо-вариант с фиксированным депозитом
)

// IsValid returns true if the service type is one of the known variants
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceHomeClean, ServiceOfficeClean, ServiceFreeRoom:
		return true
	}
	return false
}

// SizeClass represents a room size category
type SizeClass string

const (
	SizeXS SizeClass = "xs"
	SizeS  SizeClass = "s"
	SizeM  SizeClass = "m"
	SizeL  SizeClass = "l"
	SizeXL SizeClass = "xl"
)

// FootfallLevel уровень проходимости/загрязненности, масштабирует длительность
type FootfallLevel string

const (
	FootfallLight     FootfallLevel = "light"
	FootfallAverage   FootfallLevel = "average"
	FootfallHeavy     FootfallLevel = "heavy"
	FootfallVeryHeavy FootfallLevel = "very_heavy"
)

// SuppliesChoice кто предоставляет средства для уборки
type SuppliesChoice string

const (
	SuppliesCustomer SuppliesChoice = "customer" // средства заказчика, без доплаты
	SuppliesProvider SuppliesChoice = "provider" // средства компании, фиксированная доплата
)

// AccessMethod способ доступа к помещению
type AccessMethod string

const (
	AccessSomeoneHome AccessMethod = "someone_home"
	AccessAlternative AccessMethod = "alternative" // ключ/код, требует инструкции
)

// RoomEntry одна комната в описании работы
type RoomEntry struct {
	RoomType  string    `json:"roomType"`
	SizeClass SizeClass `json:"sizeClass"`
}

// JobDescription структурированное описание работы, вход ценового движка
// Собирается формой по мере редактирования, персистится только при submit
type JobDescription struct {
	ServiceType ServiceType    `json:"serviceType"`
	Rooms       []RoomEntry    `json:"rooms"`
	AddOns      map[string]int `json:"addOns"` // ключ аддона -> количество
	Footfall    FootfallLevel  `json:"footfall"`
	Supplies    SuppliesChoice `json:"supplies"`
	Date        time.Time      `json:"-"` // влияет на weekend/weekday тариф
}

// IsWeekend возвращает true, если дата работы приходится на субботу или воскресенье
func (j *JobDescription) IsWeekend() bool {
	wd := j.Date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
