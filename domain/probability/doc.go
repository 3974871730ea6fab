// Package probability implements the probability lessons: classical and
// conditional probability, Bayes' theorem, contingency tables, the coin,
// dice, card, dependency and urn simulators, and Bernoulli trials with the
// fair payout of a bet.
//
// Simulators never keep state between calls. Running tallies belong to the
// caller, which passes the previous tally in and stores the one returned.
package probability
