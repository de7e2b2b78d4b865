package todo

// Option — функция частичного обновления: применяется только к тем полям,
// которые реально пришли в запросе
type Option func(*Todo)

func WithTitle(title string) Option {
	return func(t *Todo) {
		t.Title = title
	}
}

// WithDescription принимает nil: это явный сброс описания в NULL,
// а не "поле не передано"
func WithDescription(description *string) Option {
	return func(t *Todo) {
		if description == nil {
			t.Description = nil
			return
		}
		d := *description
		t.Description = &d
	}
}

func WithCompleted(completed bool) Option {
	return func(t *Todo) {
		t.Completed = completed
	}
}
