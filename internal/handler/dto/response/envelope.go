package response

// Envelope is the uniform success wrapper; errors use httperr.Response so the
// two shapes share the success discriminator.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}
