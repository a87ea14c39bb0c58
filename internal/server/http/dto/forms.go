package dto

// LoginForm is the body of POST /auth/login.
type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// SignupForm is the body of POST /auth/signup.
type SignupForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// ProductForm is submitted by the admin create and edit forms. Price stays a
// string until the draft is parsed.
type ProductForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	Price       string `form:"price" binding:"required"`
	Image       string `form:"image" binding:"required"`
}

// FormValues are echoed back into a form that failed to submit.
// Passwords are never echoed.
type FormValues struct {
	Name        string
	Email       string
	Description string
	Price       string
	Image       string
}

func (f LoginForm) Values() FormValues {
	return FormValues{Email: f.Email}
}

func (f SignupForm) Values() FormValues {
	return FormValues{Name: f.Name, Email: f.Email}
}

func (f ProductForm) Values() FormValues {
	return FormValues{Name: f.Name, Description: f.Description, Price: f.Price, Image: f.Image}
}
