package listview

// Modos del flujo listado ⇄ formulario.
const (
	ModeListing = "listing"
	ModeForm    = "form"
)

// FormFlow modela el flujo de pantalla Listing → (New/Edit) → Form →
// (Submit OK | Cancel) → Listing. No existe un modo intermedio "saving":
// un envío fallido permanece en Form con el borrador intacto y un mensaje
// de error.
type FormFlow[T any] struct {
	mode  string
	draft T
	err   string
}

// NewFormFlow inicia en el listado.
func NewFormFlow[T any]() FormFlow[T] {
	return FormFlow[T]{mode: ModeListing}
}

// Mode devuelve el modo actual.
func (f FormFlow[T]) Mode() string { return f.mode }

// Draft devuelve el borrador en edición (valor cero fuera de Form).
func (f FormFlow[T]) Draft() T { return f.draft }

// Err devuelve el mensaje del último envío fallido, vacío si no hay.
func (f FormFlow[T]) Err() string { return f.err }

// Open pasa a Form con un borrador (alta o edición).
func (f FormFlow[T]) Open(draft T) FormFlow[T] {
	return FormFlow[T]{mode: ModeForm, draft: draft}
}

// Cancel descarta el borrador y regresa al listado.
func (f FormFlow[T]) Cancel() FormFlow[T] {
	return FormFlow[T]{mode: ModeListing}
}

// SubmitOK cierra el formulario tras un envío exitoso.
func (f FormFlow[T]) SubmitOK() FormFlow[T] {
	return FormFlow[T]{mode: ModeListing}
}

// SubmitErr conserva el borrador y registra el error del envío.
func (f FormFlow[T]) SubmitErr(msg string) FormFlow[T] {
	f.err = msg
	return f
}
