package docs

// @title           Voo Pricing Service API
// @version         1.0
// @description     Pricing service for cab rides. Calculates deterministic fares from Voo's tariff with optional surge and environmental adjustments, and predicts ride prices with an externally trained regression model.

// @contact.name   API Support

// @host      localhost:3002
// @BasePath  /
