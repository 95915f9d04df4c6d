package domain

// The Restore functions rebuild value objects from storage, where the values
// were validated when first written. They skip validation and must not be fed
// user input.

// RestoreTitle wraps a stored title.
func RestoreTitle(v string) Title { return Title{value: v} }

// RestoreDescription wraps a stored description.
func RestoreDescription(v string) Description { return Description{value: v} }

// RestoreParagraph wraps a stored, already normalized paragraph.
func RestoreParagraph(v string) Paragraph { return Paragraph{value: v} }

// RestoreEmail wraps a stored email address.
func RestoreEmail(v string) Email { return Email{value: v} }

// RestoreUserName wraps a stored user name.
func RestoreUserName(v string) UserName { return UserName{value: v} }

// RestoreLoginID wraps a stored login id. An empty string yields an empty LoginID.
func RestoreLoginID(v string) LoginID { return LoginID{value: v} }

// RestoreRoleName wraps a stored role name.
func RestoreRoleName(v string) RoleName { return RoleName{value: v} }
