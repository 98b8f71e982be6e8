package domain

// Tipos de evento del contexto de anuncios.
const (
	AdCreated = "ad.created"
)

// Nombres por defecto de los destinos.
const (
	AdTable  = "ads"
	AdTopic  = "ads-created"
	AdBucket = "ads-bucket"
)
