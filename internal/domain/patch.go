package domain

// Tipos de actualización parcial. Solo los campos no nulos se escriben;
// ninguno incluye el dueño: el campo userEmail es inmutable tras la
// creación.

type ClassPatch struct {
	Title      *string
	Subject    *string
	Instructor *string
	Schedule   *string
}

type TransactionPatch struct {
	Amount   *float64
	Category *string
	Note     *string
	Date     *string
}

type StudyPlanPatch struct {
	Topic     *string
	Date      *string
	Priority  *string
	Completed *bool
}
