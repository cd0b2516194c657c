package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report fields by their form name, matching what the templates render.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// mensagens maps field -> validation tag -> user-facing message.
var mensagens = map[string]map[string]string{
	"nome": {
		"required": "O nome é obrigatório.",
		"min":      "O nome deve ter entre 3 e 100 caracteres.",
		"max":      "O nome deve ter entre 3 e 100 caracteres.",
	},
	"email": {
		"required": "O e-mail é obrigatório.",
		"email":    "Formato de e-mail inválido.",
	},
	"descricao": {
		"max": "A descrição não pode exceder 255 caracteres.",
	},
	"usuarioId": {
		"required": "O usuário criador é obrigatório.",
	},
}

// ===========================
// ✅ Validate Form DTO
// Returns the aggregated field errors, one message per failing field.
// An empty map means the input passed.
func ValidateStruct(s interface{}) map[string]string {
	erros := map[string]string{}

	err := validate.Struct(s)
	if err == nil {
		return erros
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		erros["_"] = "Entrada inválida."
		return erros
	}

	for _, fe := range validationErrors {
		campo := fe.Field()
		if _, exists := erros[campo]; exists {
			continue
		}
		if porTag, ok := mensagens[campo]; ok {
			if msg, ok := porTag[fe.Tag()]; ok {
				erros[campo] = msg
				continue
			}
		}
		erros[campo] = "Valor inválido."
	}

	return erros
}

// JoinFieldErrors flattens field errors into "campo: mensagem, ..." for logs
// and structured error bodies.
func JoinFieldErrors(erros map[string]string) string {
	partes := make([]string, 0, len(erros))
	for campo, msg := range erros {
		partes = append(partes, campo+": "+msg)
	}
	return strings.Join(partes, ", ")
}
