package constants

// Rôles des comptes opérateurs
const (
	ROLE_ADMIN = "admin"
	ROLE_USER  = "user"
)

var Roles = []string{ROLE_ADMIN, ROLE_USER}

// Types d'espace réservables
const (
	SPACE_COWORKING     = "coworking"
	SPACE_BUREAU_PRIVE  = "bureau-prive"
	SPACE_SALLE_REUNION = "salle-reunion"
	SPACE_DOMICILIATION = "domiciliation"
)

var SpaceTypes = []string{SPACE_COWORKING, SPACE_BUREAU_PRIVE, SPACE_SALLE_REUNION, SPACE_DOMICILIATION}

// Types d'abonnement
const (
	SUBSCRIPTION_HOURLY  = "hourly"
	SUBSCRIPTION_DAILY   = "daily"
	SUBSCRIPTION_MONTHLY = "monthly"
	SUBSCRIPTION_YEARLY  = "yearly"
)

var SubscriptionTypes = []string{SUBSCRIPTION_HOURLY, SUBSCRIPTION_DAILY, SUBSCRIPTION_MONTHLY, SUBSCRIPTION_YEARLY}

// Statuts de réservation
const (
	RESERVATION_PENDING   = "pending"
	RESERVATION_CONFIRMED = "confirmed"
	RESERVATION_CANCELLED = "cancelled"
	RESERVATION_COMPLETED = "completed"
)

var ReservationStatuses = []string{RESERVATION_PENDING, RESERVATION_CONFIRMED, RESERVATION_CANCELLED, RESERVATION_COMPLETED}

// Moyens de paiement
const (
	PAYMENT_ORANGE_MONEY = "orange_money"
	PAYMENT_AIRTEL_MONEY = "airtel_money"
	PAYMENT_VISA         = "visa"
	PAYMENT_CASH         = "cash"
)

var PaymentMethods = []string{PAYMENT_ORANGE_MONEY, PAYMENT_AIRTEL_MONEY, PAYMENT_VISA, PAYMENT_CASH}

// Statuts de paiement
const (
	PAYMENT_STATUS_PENDING = "pending"
	PAYMENT_STATUS_PAID    = "paid"
	PAYMENT_STATUS_FAILED  = "failed"
)

// Disponibilité d'un espace
const (
	AVAILABILITY_AVAILABLE   = "available"
	AVAILABILITY_MAINTENANCE = "maintenance"
	AVAILABILITY_RESERVED    = "reserved"
	AVAILABILITY_UNAVAILABLE = "unavailable"
)

var AvailabilityStatuses = []string{AVAILABILITY_AVAILABLE, AVAILABILITY_MAINTENANCE, AVAILABILITY_RESERVED, AVAILABILITY_UNAVAILABLE}

// Langues supportées par le catalogue
const (
	LANG_FR = "fr"
	LANG_EN = "en"
)

// Messages d'erreur communs
const (
	ERROR_INTERNAL_ERROR     = "Erreur interne du serveur"
	ERROR_INPUT              = "Données d'entrée invalides"
	MISSING_LOGIN_INPUT      = "Nom d'utilisateur et mot de passe requis"
	INVALID_USERNAME         = "Nom d'utilisateur inconnu"
	INVALID_PASSWORD         = "Mot de passe incorrect"
	ACCOUNT_NOT_ACTIVE       = "Compte désactivé"
	DATA_INPUT_IS_NOT_NUMBER = "Le paramètre doit être un nombre"
	FORBIDDEN_ADMIN_ONLY     = "Réservé aux administrateurs"
	ERROR_NOT_CONFIGURED     = "Backend non configuré"
)
