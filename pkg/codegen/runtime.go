package codegen

// emitRuntimeHelpers emits the two small helper routines every translation
// unit carries regardless of whether it uses them: __zed_strlen (a
// byte-at-a-time length scan, signature (%rdi ptr) -> %rax length) and
// __zed_itoa (signed 64-bit to decimal ASCII, signature (%rdi value, %rsi
// buffer) -> %rax length, writing least-significant digit first then
// backing up). The __zed_ prefix marks them as owned by zed's own runtime,
// not the host C library. Local labels use names rather than the .L<n>
// counter so they never collide with labels newLabel() hands out elsewhere.
func (c *Context) emitRuntimeHelpers() {
	c.emit("")
	c.emit("__zed_strlen:")
	c.emit("    pushq %rbp")
	c.emit("    movq %rsp, %rbp")
	c.emit("    movq $-1, %rax")
	c.emit(".Lzed_strlen_loop:")
	c.emit("    incq %rax")
	c.emit("    movb (%rdi,%rax), %cl")
	c.emit("    testb %cl, %cl")
	c.emit("    jnz .Lzed_strlen_loop")
	c.emit("    popq %rbp")
	c.emit("    ret")

	c.emit("")
	c.emit("__zed_itoa:")
	c.emit("    pushq %rbp")
	c.emit("    movq %rsp, %rbp")
	c.emit("    pushq %rbx")
	c.emit("    pushq %r12")
	c.emit("    pushq %r13")

	c.emit("    movq %rdi, %rax") // number to convert
	c.emit("    movq %rsi, %r12") // buffer
	c.emit("    movq $0, %r13")   // length

	c.emit("    cmpq $0, %rax")
	c.emit("    jge .Lzed_itoa_positive")
	c.emit("    negq %rax")
	c.emit("    movb $45, (%r12)") // '-'
	c.emit("    incq %r12")
	c.emit("    incq %r13")

	c.emit(".Lzed_itoa_positive:")
	c.emit("    movq %rax, %rbx") // save number
	c.emit("    movq $0, %r8")    // digit count

	c.emit(".Lzed_itoa_count:")
	c.emit("    movq $0, %rdx")
	c.emit("    movq $10, %rcx")
	c.emit("    divq %rcx")
	c.emit("    incq %r8")
	c.emit("    cmpq $0, %rax")
	c.emit("    jne .Lzed_itoa_count")

	c.emit("    addq %r8, %r13") // add to length
	c.emit("    addq %r8, %r12") // point to end
	c.emit("    decq %r12")      // back up one
	c.emit("    movq %rbx, %rax") // restore number

	c.emit(".Lzed_itoa_convert:")
	c.emit("    movq $0, %rdx")
	c.emit("    movq $10, %rcx")
	c.emit("    divq %rcx")
	c.emit("    addb $48, %dl") // to ASCII
	c.emit("    movb %dl, (%r12)")
	c.emit("    decq %r12")
	c.emit("    cmpq $0, %rax")
	c.emit("    jne .Lzed_itoa_convert")

	c.emit("    movq %r13, %rax") // return length in rax

	c.emit("    popq %r13")
	c.emit("    popq %r12")
	c.emit("    popq %rbx")
	c.emit("    popq %rbp")
	c.emit("    ret")
}
