package models

// Convenção de status textual para escalas. O serviço não valida a transição
// nem rejeita valores fora desta lista; é uma convenção de UI.
const (
	StatusAgendado   = "Agendado"
	StatusConfirmado = "Confirmado"
	StatusEmTransito = "Em Trânsito"
	StatusConcluido  = "Concluído"
	StatusCancelado  = "Cancelado"
)
