package dto

// Envelope formato común de respuesta de la API:
// {status: "success"|"fail"|"error", data?, message?, count?}.
// "fail" = error del cliente (4xx), "error" = fallo del servidor (5xx).
type Envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

// Success arma una respuesta exitosa con payload.
func Success(data interface{}) Envelope {
	return Envelope{Status: "success", Data: data}
}

// SuccessCount arma una respuesta exitosa de listado con count.
func SuccessCount(data interface{}, count int) Envelope {
	return Envelope{Status: "success", Data: data, Count: &count}
}

// SuccessMessage arma una respuesta exitosa solo con mensaje (borrados).
func SuccessMessage(message string) Envelope {
	return Envelope{Status: "success", Message: message}
}

// Fail arma una respuesta de error del cliente (4xx).
func Fail(message string) Envelope {
	return Envelope{Status: "fail", Message: message}
}

// Error arma una respuesta de fallo del servidor (5xx).
func Error(message string) Envelope {
	return Envelope{Status: "error", Message: message}
}
