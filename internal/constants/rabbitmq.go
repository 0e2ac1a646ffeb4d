package constants

const (
	// Обменник, через который сайт отдает заявки менеджерам
	SiteExchange     = "site_exchange"
	SiteExchangeType = "direct"

	RoutingKeyContactRequests = "contact_requests"
)
