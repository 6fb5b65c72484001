package validator

// Failure codes of the built-in rules. Each code is also the translation
// code used to render the failure message.
const (
	CodeNotNull            = "validation.not_null"
	CodeNull               = "validation.null"
	CodeNotEmpty           = "validation.not_empty"
	CodeEmpty              = "validation.empty"
	CodeEqual              = "validation.equal"
	CodeNotEqual           = "validation.not_equal"
	CodeLength             = "validation.length"
	CodeMinLength          = "validation.min_length"
	CodeMaxLength          = "validation.max_length"
	CodeExactLength        = "validation.exact_length"
	CodeMinItems           = "validation.min_items"
	CodeMaxItems           = "validation.max_items"
	CodeExactItems         = "validation.exact_items"
	CodeUnique             = "validation.unique"
	CodeLessThan           = "validation.less_than"
	CodeLessThanOrEqual    = "validation.less_than_or_equal"
	CodeGreaterThan        = "validation.greater_than"
	CodeGreaterThanOrEqual = "validation.greater_than_or_equal"
	CodeInclusiveBetween   = "validation.inclusive_between"
	CodeExclusiveBetween   = "validation.exclusive_between"
	CodePositive           = "validation.positive"
	CodePrecisionScale     = "validation.precision_scale"
	CodeMatches            = "validation.matches"
	CodeEmail              = "validation.email"
	CodeURL                = "validation.url"
	CodePhone              = "validation.phone"
	CodeAlphanumeric       = "validation.alphanumeric"
	CodeCreditCard         = "validation.credit_card"
	CodeCPF                = "validation.cpf"
	CodeCNPJ               = "validation.cnpj"
	CodeUUID               = "validation.uuid"
	CodeIn                 = "validation.in"
	CodeNotIn              = "validation.not_in"
	CodeBefore             = "validation.before"
	CodeAfter              = "validation.after"
	CodePast               = "validation.past"
	CodeFuture             = "validation.future"
	CodePredicate          = "validation.predicate"
)

// Message parameters available to templates.
const (
	ParamPropertyName      = "PropertyName"
	ParamPropertyValue     = "PropertyValue"
	ParamComparisonValue   = "ComparisonValue"
	ParamMinLength         = "MinLength"
	ParamMaxLength         = "MaxLength"
	ParamTotalLength       = "TotalLength"
	ParamMinItems          = "MinItems"
	ParamMaxItems          = "MaxItems"
	ParamTotalItems        = "TotalItems"
	ParamFrom              = "From"
	ParamTo                = "To"
	ParamValues            = "Values"
	ParamExpectedPrecision = "ExpectedPrecision"
	ParamExpectedScale     = "ExpectedScale"
)
