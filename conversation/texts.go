// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package conversation

// User-facing text.
const (
	textMenu = "Welcome! This bot allows you to check if your ballot was " +
		"counted in the Russian elections in 2024. " +
		"If something goes wrong, type /cancel to go back to the menu. " +
		"Choose a command:"

	textNoRecords    = "You don't have any transactions to verify yet."
	textLimitReached = "You already have %d transactions under verification, which is the limit. " +
		"Remove one before adding another."

	textListHeader = "Currently verified transactions: %d."
	textListAsk    = "Do you want to remove some of the transactions from monitoring?"

	textChooseRemoval = "Which transaction do you wish to remove?"
	textConfirmDelete = "About to delete transaction:"
	textAreYouSure    = "Are you sure?"
	textDeleted       = "Successfully deleted transaction #%d."

	textChooseRegion = "You want us to check if your ballot was accounted for correctly " +
		"in the electronic elections in Russia. Please choose your region:"

	textMoscowInstructions = `Please check the checkbox "Get address of an encrypted transaction with the vote" while voting.`
	textOtherInstructions  = "After voting, you need to record the transaction ID and the public voter key."

	textMoscowDetails = "Since 2022 the Moscow system lets a voter opt in to receive the address " +
		"of their encrypted transaction in the blockchain. Tick the checkbox before you submit " +
		"your ballot: the page shown after voting then contains a unique number that lets you " +
		"check whether your vote was counted and, after the count, which candidate it went to."
	textOtherDetails = "Outside Moscow the federal system uses homomorphic encryption: votes are " +
		"summed while still encrypted and only the final tally is decrypted. You can check that " +
		"your vote is part of the sum, but not which candidate it counted for. Keep the " +
		"transaction ID and the public voter key shown after voting."

	textMoscowTxID = "Please send the transaction SID in the response that you get after the voting."
	textOtherTxID  = "Please send the transaction ID in the response that you get after the voting. " +
		"You will be asked for the voter key next."
	textVoterKey = "Now, please provide your public voter key in the response."

	textBlankTxID     = "The transaction ID cannot be empty."
	textBlankVoterKey = "The voter key cannot be empty."

	textConfirmHeader = "Here is your information:"
	textIsCorrect     = "Is this correct?"
	textRetry         = "Please respond with one of the buttons below."
	textSaved         = "Thank you! Your details have been recorded."
	textRejected      = "OK, going back to main menu. Try again."

	textFailure = "Something went wrong. Please try again, or type /cancel to go back to the menu."
)

// Button labels
const (
	labelAddRecord   = "Add a transaction to verification"
	labelListRecords = "List currently checked transactions"
	labelYes         = "Yes"
	labelNoMenu      = "No, go back to menu"
	labelNoBack      = "No, go back"
	labelGoBack      = "Go back"
	labelMoscow      = "Moscow"
	labelOther       = "Other"
	labelBackToMenu  = "Back to menu"
	labelReadyMoscow = "Send SID for Moscow election"
	labelReadyOther  = "Send transaction ID and voter key for regional election"
	labelMoreInfo    = "Tell me more about this"
	labelCorrect     = "Yes, I confirm everything is correct"
)
