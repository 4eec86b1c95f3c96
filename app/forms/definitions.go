package forms

// The concrete forms the app serves. Choice lists are supplied by the
// caller from current database state immediately before each render.

func Login() *Form {
	return &Form{
		Name: "login",
		Fields: []Field{
			{Name: "username", Label: "Username", Type: Text,
				Validators: []Validator{Required(), Length(4, 15)}},
			{Name: "password", Label: "Password", Type: Password,
				Validators: []Validator{Required(), Length(8, 80)}},
			{Name: "remember", Label: "Remember Me", Type: Boolean},
		},
	}
}

func Signup() *Form {
	return &Form{
		Name: "signup",
		Fields: []Field{
			{Name: "email", Label: "Email", Type: Text,
				Validators: []Validator{Required(), Email(), MaxLength(50)}},
			{Name: "username", Label: "Username", Type: Text,
				Validators: []Validator{Required(), Length(4, 15)}},
			{Name: "password", Label: "Password", Type: Password,
				Validators: []Validator{Required(), Length(8, 80)}},
		},
	}
}

func ResetRequest() *Form {
	return &Form{
		Name: "reset_request",
		Fields: []Field{
			{Name: "email", Label: "Email", Type: Text,
				Validators: []Validator{Required(), Email()}},
		},
	}
}

func ResetPassword() *Form {
	return &Form{
		Name: "reset_password",
		Fields: []Field{
			{Name: "password", Label: "New Password", Type: Password,
				Validators: []Validator{Required(), Length(8, 80)}},
			{Name: "confirm_password", Label: "Confirm Password", Type: Password,
				Validators: []Validator{Required(), EqualTo("password", "the new password")}},
		},
	}
}

// SwapLog is the drive-swap entry form. Every choice list must reflect the
// rows that exist right now, or selections would fail membership checks.
func SwapLog(buses, supervisors, reasons, drives []Option) *Form {
	return &Form{
		Name: "swap_log",
		Fields: []Field{
			{Name: "bus", Label: "Bus", Type: Choice, Choices: buses,
				Validators: []Validator{Required()}},
			{Name: "supervisor", Label: "Supervisor", Type: Choice, Choices: supervisors,
				Validators: []Validator{Required()}},
			{Name: "reason", Label: "Reason", Type: Choice, Choices: reasons,
				Validators: []Validator{Required()}},
			{Name: "drive_out", Label: "Drive Removed", Type: Choice, Choices: drives,
				Validators: []Validator{Required()}},
			{Name: "drive_in", Label: "Drive Installed", Type: Choice, Choices: drives,
				Validators: []Validator{Required(), NotEqualTo("drive_out", "the removed drive")}},
			{Name: "date", Label: "Date", Type: Date,
				Validators: []Validator{Required(), DateFormat()}},
			{Name: "time", Label: "Time", Type: Time,
				Validators: []Validator{Required(), TimeFormat()}},
			{Name: "notes", Label: "Notes", Type: TextArea,
				Validators: []Validator{MaxLength(300)}},
		},
	}
}
