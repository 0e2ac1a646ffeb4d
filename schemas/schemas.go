// Package schemas хранит JSON-схемы сообщений и файлов, которыми сервис обменивается с внешним миром.
package schemas

import "embed"

//go:embed events documents
var SchemasFS embed.FS
