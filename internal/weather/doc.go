// Package weather is the HTTP client for the current-weather service.
//
// Two providers are supported. The default proxy endpoint takes
// ?city=&country= and needs no credential. The OpenWeatherMap provider
// takes ?q=City,CC&units=metric&appid=KEY and refuses to fetch without a
// key. Both answer with OpenWeather-shaped JSON; only main.temp and
// main.feels_like are read.
//
// Every failure returned by Fetch is a *Error classified by Kind, so
// callers can branch with errors.Is(err, weather.ErrService) and friends.
// The client never retries: recovery is the next scheduled refresh. A
// circuit breaker (sony/gobreaker) trips after three consecutive network
// or 5xx failures and fails fast until its timeout elapses.
package weather
