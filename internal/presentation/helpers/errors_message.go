package helpers

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	translator      ut.Translator
	translatorOnce  sync.Once
	registeredMutex sync.Mutex
	registered      = map[*validator.Validate]bool{}
)

func englishTranslator() ut.Translator {
	translatorOnce.Do(func() {
		eng := en.New()
		uni := ut.New(eng, eng)
		translator, _ = uni.GetTranslator("en")
	})
	return translator
}

// GetErrorMessages joins the translated messages of validator errors. Errors of
// any other kind are returned as their plain text.
func GetErrorMessages(validate *validator.Validate, errs error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(errs, &validationErrors) {
		return errs.Error()
	}

	trans := englishTranslator()

	registeredMutex.Lock()
	if !registered[validate] {
		en_translations.RegisterDefaultTranslations(validate, trans)
		registered[validate] = true
	}
	registeredMutex.Unlock()

	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, e.Translate(trans))
	}
	return strings.Join(errorMessages, ", ")
}
